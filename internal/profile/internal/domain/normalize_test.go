// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		raw  any
		want ResumeDetails
	}{
		{
			name: "nil输入_全默认值",
			raw:  nil,
			want: DefaultResumeDetails(),
		},
		{
			name: "非对象输入_全默认值",
			raw:  "not an object",
			want: DefaultResumeDetails(),
		},
		{
			name: "空对象_全默认值",
			raw:  map[string]any{},
			want: DefaultResumeDetails(),
		},
		{
			name: "列表字段不是数组_替换成默认占位列表",
			raw: map[string]any{
				"education":  "oops",
				"experience": 123,
				"skills":     map[string]any{},
				"projects":   nil,
			},
			want: DefaultResumeDetails(),
		},
		{
			name: "空数组_补回至少一条的占位",
			raw: map[string]any{
				"education":  []any{},
				"experience": []any{},
				"skills":     []any{},
				"projects":   []any{},
			},
			want: DefaultResumeDetails(),
		},
		{
			name: "部分字段_缺失的补空串_已有的保留",
			raw: map[string]any{
				"education": []any{
					map[string]any{
						"institution": "清华大学",
						"degree":      "BS",
					},
				},
				"skills": []any{"Go", "MySQL"},
				"personalLinks": map[string]any{
					"github": "https://github.com/someone",
				},
			},
			want: ResumeDetails{
				Education: []Education{
					{Institution: "清华大学", Degree: "BS"},
				},
				Experience: []Experience{{}},
				Skills:     []string{"Go", "MySQL"},
				Projects:   []Project{{}},
				PersonalLinks: PersonalLinks{
					GitHub: "https://github.com/someone",
				},
			},
		},
		{
			name: "旧版graduationDate_与拆分字段共存",
			raw: map[string]any{
				"education": []any{
					map[string]any{
						"graduationDate":      "2020-06",
						"graduationStartYear": "2016",
						"graduationEndYear":   "2020",
					},
				},
			},
			want: ResumeDetails{
				Education: []Education{
					{
						GraduationDate:      "2020-06",
						GraduationStartYear: "2016",
						GraduationEndYear:   "2020",
					},
				},
				Experience: []Experience{{}},
				Skills:     []string{""},
				Projects:   []Project{{}},
			},
		},
		{
			name: "数组里混入非对象条目_归一成全空条目",
			raw: map[string]any{
				"projects": []any{
					"bad entry",
					map[string]any{"title": "Portal"},
				},
				"skills": []any{nil, 42, "Python"},
			},
			want: ResumeDetails{
				Education:  []Education{{}},
				Experience: []Experience{{}},
				Skills:     []string{"", "", "Python"},
				Projects: []Project{
					{},
					{Title: "Portal"},
				},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tc.raw)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestNormalize_LegacyJSON 旧版 resumeData 反序列化之后走同一条归一路径
func TestNormalize_LegacyJSON(t *testing.T) {
	t.Parallel()
	legacy := `{
		"education": [{"institution": "X", "major": "CS"}],
		"experience": [{"company": "Acme", "isCurrent": true}],
		"skills": ["Python"],
		"projects": []
	}`
	var raw any
	require.NoError(t, json.Unmarshal([]byte(legacy), &raw))
	got := Normalize(raw)
	assert.Equal(t, "X", got.Education[0].Institution)
	assert.Equal(t, "CS", got.Education[0].Major)
	assert.True(t, got.Experience[0].IsCurrent)
	assert.Equal(t, []string{"Python"}, got.Skills)
	// 空的 projects 数组也要补回占位条目
	assert.Equal(t, []Project{{}}, got.Projects)
}

// TestNormalize_NeverEmptyLists 四个列表永远至少一条
func TestNormalize_NeverEmptyLists(t *testing.T) {
	t.Parallel()
	inputs := []any{
		nil,
		map[string]any{},
		map[string]any{"education": []any{}, "skills": false},
		[]any{"wrong shape"},
	}
	for _, in := range inputs {
		got := Normalize(in)
		assert.NotEmpty(t, got.Education)
		assert.NotEmpty(t, got.Experience)
		assert.NotEmpty(t, got.Skills)
		assert.NotEmpty(t, got.Projects)
	}
}
