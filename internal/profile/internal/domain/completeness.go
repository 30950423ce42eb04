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

// 提示文案的阈值，只用于展示，不做任何门槛控制
const (
	levelExcellent    = 80
	levelGoodProgress = 50
)

// skillsTarget 技能数量到 5 个就算满分，多了不加分
const skillsTarget = 5

// Completeness 档案完整度评估结果
type Completeness struct {
	// 各分项得分，0-100
	EducationScore  float64 `json:"educationScore"`
	ExperienceScore float64 `json:"experienceScore"`
	SkillsScore     float64 `json:"skillsScore"`
	ProjectsScore   float64 `json:"projectsScore"`
	DocumentScore   float64 `json:"documentScore"`
	// Overall 五个分项的算术平均
	Overall float64 `json:"overall"`
	// Level 提示文案：excellent / good progress / needs attention
	Level string `json:"level"`

	EducationComplete  bool `json:"educationComplete"`
	ExperienceComplete bool `json:"experienceComplete"`
	SkillsComplete     bool `json:"skillsComplete"`
	ProjectsComplete   bool `json:"projectsComplete"`
	ResumeFileUploaded bool `json:"resumeFileUploaded"`
	// IsComplete 教育 + 技能 + 简历文件三项都齐才算完整
	IsComplete bool `json:"isComplete"`
}

// Evaluate 对档案做完整度打分
// 列表类分项只看第一个条目，表单默认就是编辑第一行
func Evaluate(details ResumeDetails, fileUploaded bool) Completeness {
	var edu Education
	if len(details.Education) > 0 {
		edu = details.Education[0]
	}
	var exp Experience
	if len(details.Experience) > 0 {
		exp = details.Experience[0]
	}
	var prj Project
	if len(details.Projects) > 0 {
		prj = details.Projects[0]
	}

	eduScore := sectionScore(edu.Institution, edu.Degree, edu.Major, edu.Seniority)
	expScore := sectionScore(exp.Company, exp.Position, exp.Description)
	prjScore := sectionScore(prj.Title, prj.Description, prj.Technologies)

	skillCnt := 0
	for _, s := range details.Skills {
		if s != "" {
			skillCnt++
		}
	}
	skillScore := float64(skillCnt) / skillsTarget
	if skillScore > 1 {
		skillScore = 1
	}
	skillScore *= 100

	docScore := 0.0
	if fileUploaded {
		docScore = 100
	}

	overall := (eduScore + expScore + skillScore + prjScore + docScore) / 5

	res := Completeness{
		EducationScore:     eduScore,
		ExperienceScore:    expScore,
		SkillsScore:        skillScore,
		ProjectsScore:      prjScore,
		DocumentScore:      docScore,
		Overall:            overall,
		Level:              level(overall),
		EducationComplete:  edu.Institution != "" && edu.Degree != "" && edu.Major != "",
		ExperienceComplete: exp.Company != "" && exp.Position != "",
		SkillsComplete:     skillCnt > 0,
		ProjectsComplete:   prj.Title != "" && prj.Description != "",
		ResumeFileUploaded: fileUploaded,
	}
	res.IsComplete = res.EducationComplete && res.SkillsComplete && res.ResumeFileUploaded
	return res
}

func sectionScore(fields ...string) float64 {
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields)) * 100
}

func level(overall float64) string {
	switch {
	case overall >= levelExcellent:
		return "excellent"
	case overall >= levelGoodProgress:
		return "good progress"
	default:
		return "needs attention"
	}
}
