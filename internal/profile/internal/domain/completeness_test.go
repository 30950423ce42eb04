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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	t.Run("全默认档案_未上传文件_总分0", func(t *testing.T) {
		t.Parallel()
		got := Evaluate(DefaultResumeDetails(), false)
		assert.Equal(t, float64(0), got.Overall)
		assert.Equal(t, "needs attention", got.Level)
		assert.False(t, got.IsComplete)
	})

	t.Run("填满教育四个必填字段_教育分项满分", func(t *testing.T) {
		t.Parallel()
		details := DefaultResumeDetails()
		details.Education[0] = Education{
			Institution: "X",
			Degree:      "BS",
			Major:       "CS",
			Seniority:   "senior",
		}
		got := Evaluate(details, false)
		assert.Equal(t, float64(100), got.EducationScore)
		assert.True(t, got.EducationComplete)
	})

	t.Run("技能5个封顶_再多不加分", func(t *testing.T) {
		t.Parallel()
		details := DefaultResumeDetails()
		details.Skills = []string{"a", "b", "c", "d", "e"}
		five := Evaluate(details, false)
		assert.Equal(t, float64(100), five.SkillsScore)

		details.Skills = append(details.Skills, "f", "g")
		seven := Evaluate(details, false)
		assert.Equal(t, five.SkillsScore, seven.SkillsScore)
	})

	t.Run("空串技能不计数", func(t *testing.T) {
		t.Parallel()
		details := DefaultResumeDetails()
		details.Skills = []string{"", "Go", ""}
		got := Evaluate(details, false)
		assert.Equal(t, float64(20), got.SkillsScore)
		assert.True(t, got.SkillsComplete)
	})

	t.Run("字段从空变非空_所有受影响分项单调不减", func(t *testing.T) {
		t.Parallel()
		before := Evaluate(DefaultResumeDetails(), false)

		details := DefaultResumeDetails()
		details.Education[0] = Education{
			Institution: "X", Degree: "BS", Major: "CS", Seniority: "senior",
		}
		details.Skills = []string{"Python"}
		after := Evaluate(details, true)

		assert.Greater(t, after.EducationScore, before.EducationScore)
		assert.Greater(t, after.SkillsScore, before.SkillsScore)
		assert.Greater(t, after.DocumentScore, before.DocumentScore)
		assert.Greater(t, after.Overall, before.Overall)
		assert.GreaterOrEqual(t, after.ExperienceScore, before.ExperienceScore)
		assert.GreaterOrEqual(t, after.ProjectsScore, before.ProjectsScore)
	})

	// 端到端的完整性判定：教育 + 技能齐了但没传简历文件，不算完整；
	// 文件到位之后才算
	t.Run("完整性判定_依赖简历文件", func(t *testing.T) {
		t.Parallel()
		details := DefaultResumeDetails()
		details.Education[0] = Education{
			Institution: "X", Degree: "BS", Major: "CS", Seniority: "senior",
		}
		details.Skills = []string{"Python", "SQL"}

		noFile := Evaluate(details, false)
		assert.True(t, noFile.EducationComplete)
		assert.True(t, noFile.SkillsComplete)
		assert.False(t, noFile.ResumeFileUploaded)
		assert.False(t, noFile.IsComplete)

		withFile := Evaluate(details, true)
		assert.True(t, withFile.IsComplete)
	})
}

func TestTotalYearsOfExperience(t *testing.T) {
	t.Parallel()
	now := time.Date(2021, 4, 15, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		entries []Experience
		want    float64
	}{
		{
			name: "闭区间加进行中区间",
			entries: []Experience{
				{StartYear: "2020", StartMonth: "1", EndYear: "2020", EndMonth: "7"},
				{StartYear: "2021", StartMonth: "1"},
			},
			// (6 + 3) / 12，按 0.1 取整
			want: 0.8,
		},
		{
			name: "同月起止_为0不为负",
			entries: []Experience{
				{StartYear: "2022", StartMonth: "1", EndYear: "2022", EndMonth: "1"},
			},
			want: 0,
		},
		{
			name: "负区间钳到0_不抵消其它条目",
			entries: []Experience{
				{StartYear: "2020", StartMonth: "7", EndYear: "2020", EndMonth: "1"},
				{StartYear: "2020", StartMonth: "1", EndYear: "2021", EndMonth: "1"},
			},
			want: 1.0,
		},
		{
			name: "没有开始时间的条目跳过",
			entries: []Experience{
				{Company: "Acme"},
				{StartYear: "2019", StartMonth: "1", EndYear: "2020", EndMonth: "1"},
			},
			want: 1.0,
		},
		{
			name: "旧版整串日期可用",
			entries: []Experience{
				{StartDate: "2020-01", EndDate: "2020-07"},
			},
			want: 0.5,
		},
		{
			name: "isCurrent覆盖已填的结束时间",
			entries: []Experience{
				{StartYear: "2021", StartMonth: "1", EndYear: "2019", EndMonth: "1", IsCurrent: true},
			},
			want: 0.3,
		},
		{
			name:    "空列表",
			entries: nil,
			want:    0,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := TotalYearsOfExperience(tc.entries, now)
			assert.Equal(t, tc.want, got)
		})
	}
}
