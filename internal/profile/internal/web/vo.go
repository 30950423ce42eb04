package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/unilab/portal/internal/profile/internal/domain"
)

type SaveResumeReq struct {
	Resume ResumeVO `json:"resume"`
}

type ResumeVO struct {
	Education     []EducationVO   `json:"education"`
	Experience    []ExperienceVO  `json:"experience"`
	Skills        []string        `json:"skills"`
	Projects      []ProjectVO     `json:"projects"`
	PersonalLinks PersonalLinksVO `json:"personalLinks"`
}

type EducationVO struct {
	Institution          string `json:"institution"`
	Degree               string `json:"degree"`
	Major                string `json:"major"`
	GraduationStartMonth string `json:"graduationStartMonth"`
	GraduationStartYear  string `json:"graduationStartYear"`
	GraduationEndMonth   string `json:"graduationEndMonth"`
	GraduationEndYear    string `json:"graduationEndYear"`
	GraduationDate       string `json:"graduationDate"`
	GPA                  string `json:"gpa"`
	YearsOfExperience    string `json:"yearsOfExperience"`
	Seniority            string `json:"seniority"`
}

type ExperienceVO struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsCurrent   bool   `json:"isCurrent"`
}

type ProjectVO struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	URL          string `json:"url"`
}

type PersonalLinksVO struct {
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
}

func (v ResumeVO) toDomain() domain.ResumeDetails {
	return domain.Canonical(domain.ResumeDetails{
		Education: slice.Map(v.Education, func(idx int, src EducationVO) domain.Education {
			return domain.Education(src)
		}),
		Experience: slice.Map(v.Experience, func(idx int, src ExperienceVO) domain.Experience {
			return domain.Experience(src)
		}),
		Skills: v.Skills,
		Projects: slice.Map(v.Projects, func(idx int, src ProjectVO) domain.Project {
			return domain.Project(src)
		}),
		PersonalLinks: domain.PersonalLinks(v.PersonalLinks),
	})
}

func newResumeVO(d domain.ResumeDetails) ResumeVO {
	return ResumeVO{
		Education: slice.Map(d.Education, func(idx int, src domain.Education) EducationVO {
			return EducationVO(src)
		}),
		Experience: slice.Map(d.Experience, func(idx int, src domain.Experience) ExperienceVO {
			return ExperienceVO(src)
		}),
		Skills: d.Skills,
		Projects: slice.Map(d.Projects, func(idx int, src domain.Project) ProjectVO {
			return ProjectVO(src)
		}),
		PersonalLinks: PersonalLinksVO(d.PersonalLinks),
	}
}
