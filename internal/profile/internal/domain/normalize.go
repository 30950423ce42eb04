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

import "encoding/json"

// ParseStored 从存量记录的两种形态中解出规范档案：
// 结构化的 resume 字段优先，其次是旧版的 resumeData JSON 串，
// 两边都解不出来就给默认值，解析失败从不往外抛
func ParseStored(structured, legacy string) ResumeDetails {
	var raw any
	if structured != "" && json.Unmarshal([]byte(structured), &raw) == nil {
		return Normalize(raw)
	}
	raw = nil
	if legacy != "" && json.Unmarshal([]byte(legacy), &raw) == nil {
		return Normalize(raw)
	}
	return DefaultResumeDetails()
}

// Normalize 把任意来源（结构化字段、旧版 JSON 串反序列化的结果、缓存里的残缺数据）
// 归一成规范的 ResumeDetails，永远不会失败
//
// 规则：
//   - 非 map 输入直接给全默认值
//   - 四个列表字段不是数组就换成默认占位列表
//   - 是数组就把每个条目缺失的字段补成空字符串，归一后还是空列表的换成默认列表
//     （至少一条的不变式在这里兜底，不靠调用方）
//   - 旧版 graduationDate 原样保留，和拆分后的月/年字段共存
func Normalize(raw any) ResumeDetails {
	m, ok := raw.(map[string]any)
	if !ok {
		return DefaultResumeDetails()
	}
	res := ResumeDetails{
		Education:     normalizeEducation(m["education"]),
		Experience:    normalizeExperience(m["experience"]),
		Skills:        normalizeSkills(m["skills"]),
		Projects:      normalizeProjects(m["projects"]),
		PersonalLinks: normalizeLinks(m["personalLinks"]),
	}
	return res
}

func normalizeEducation(raw any) []Education {
	arr, ok := raw.([]any)
	if !ok {
		return []Education{{}}
	}
	res := make([]Education, 0, len(arr))
	for _, e := range arr {
		em, _ := e.(map[string]any)
		res = append(res, Education{
			Institution:          stringField(em, "institution"),
			Degree:               stringField(em, "degree"),
			Major:                stringField(em, "major"),
			GraduationStartMonth: stringField(em, "graduationStartMonth"),
			GraduationStartYear:  stringField(em, "graduationStartYear"),
			GraduationEndMonth:   stringField(em, "graduationEndMonth"),
			GraduationEndYear:    stringField(em, "graduationEndYear"),
			GraduationDate:       stringField(em, "graduationDate"),
			GPA:                  stringField(em, "gpa"),
			YearsOfExperience:    stringField(em, "yearsOfExperience"),
			Seniority:            stringField(em, "seniority"),
		})
	}
	if len(res) == 0 {
		return []Education{{}}
	}
	return res
}

func normalizeExperience(raw any) []Experience {
	arr, ok := raw.([]any)
	if !ok {
		return []Experience{{}}
	}
	res := make([]Experience, 0, len(arr))
	for _, e := range arr {
		em, _ := e.(map[string]any)
		res = append(res, Experience{
			Company:     stringField(em, "company"),
			Position:    stringField(em, "position"),
			Description: stringField(em, "description"),
			StartMonth:  stringField(em, "startMonth"),
			StartYear:   stringField(em, "startYear"),
			EndMonth:    stringField(em, "endMonth"),
			EndYear:     stringField(em, "endYear"),
			StartDate:   stringField(em, "startDate"),
			EndDate:     stringField(em, "endDate"),
			IsCurrent:   boolField(em, "isCurrent"),
		})
	}
	if len(res) == 0 {
		return []Experience{{}}
	}
	return res
}

func normalizeSkills(raw any) []string {
	arr, ok := raw.([]any)
	if !ok {
		return []string{""}
	}
	res := make([]string, 0, len(arr))
	for _, s := range arr {
		str, _ := s.(string)
		res = append(res, str)
	}
	if len(res) == 0 {
		return []string{""}
	}
	return res
}

func normalizeProjects(raw any) []Project {
	arr, ok := raw.([]any)
	if !ok {
		return []Project{{}}
	}
	res := make([]Project, 0, len(arr))
	for _, p := range arr {
		pm, _ := p.(map[string]any)
		res = append(res, Project{
			Title:        stringField(pm, "title"),
			Description:  stringField(pm, "description"),
			Technologies: stringField(pm, "technologies"),
			URL:          stringField(pm, "url"),
		})
	}
	if len(res) == 0 {
		return []Project{{}}
	}
	return res
}

func normalizeLinks(raw any) PersonalLinks {
	m, ok := raw.(map[string]any)
	if !ok {
		return PersonalLinks{}
	}
	return PersonalLinks{
		LinkedIn: stringField(m, "linkedin"),
		Website:  stringField(m, "website"),
		GitHub:   stringField(m, "github"),
	}
}

// stringField 缺失、null、非字符串统统给空串
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}
