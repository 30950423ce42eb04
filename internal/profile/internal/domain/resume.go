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

// Education 教育经历
// 所有字段都保持 string 类型，gpa 和 yearsOfExperience 也一样，
// 允许用户输入不规范的内容，由前端表单直接回显
type Education struct {
	Institution          string `json:"institution"`
	Degree               string `json:"degree"`
	Major                string `json:"major"`
	GraduationStartMonth string `json:"graduationStartMonth"`
	GraduationStartYear  string `json:"graduationStartYear"`
	GraduationEndMonth   string `json:"graduationEndMonth"`
	GraduationEndYear    string `json:"graduationEndYear"`
	// GraduationDate 旧版的单字段毕业时间
	// 和拆分后的月/年字段可以共存，拆分字段为准，这个只用于展示兜底
	GraduationDate    string `json:"graduationDate,omitempty"`
	GPA               string `json:"gpa"`
	YearsOfExperience string `json:"yearsOfExperience"`
	Seniority         string `json:"seniority"`
}

// Experience 工作经历
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	// 旧版的整串日期字段，格式大概率是 YYYY-MM，但不强求
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	IsCurrent bool   `json:"isCurrent"`
}

// Project 项目经历，technologies 是逗号分隔的自由文本
type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	URL          string `json:"url"`
}

// PersonalLinks 个人链接，三个都可选
// linkedin 和 website 的域名校验只在 web 层做，这里不管
type PersonalLinks struct {
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
}

// ResumeDetails 用户可编辑档案的规范形态
// 不变式：四个列表各自至少有一个条目，表单按下标覆盖占位条目，
// 而不是往空列表里插入，这样前端的行定位不会乱
type ResumeDetails struct {
	Education     []Education   `json:"education"`
	Experience    []Experience  `json:"experience"`
	Skills        []string      `json:"skills"`
	Projects      []Project     `json:"projects"`
	PersonalLinks PersonalLinks `json:"personalLinks"`
}

// DefaultResumeDetails 首次访问档案页时的初始值
func DefaultResumeDetails() ResumeDetails {
	return ResumeDetails{
		Education:  []Education{{}},
		Experience: []Experience{{}},
		Skills:     []string{""},
		Projects:   []Project{{}},
	}
}

// Canonical 给已经是结构化形态的值补齐占位条目
// 缓存里读出来的数据可能是空列表，这里兜一道不变式
func Canonical(d ResumeDetails) ResumeDetails {
	if len(d.Education) == 0 {
		d.Education = []Education{{}}
	}
	if len(d.Experience) == 0 {
		d.Experience = []Experience{{}}
	}
	if len(d.Skills) == 0 {
		d.Skills = []string{""}
	}
	if len(d.Projects) == 0 {
		d.Projects = []Project{{}}
	}
	return d
}
