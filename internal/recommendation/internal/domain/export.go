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
	"github.com/unilab/portal/internal/profile"
)

// RecommendationProfile 给外部推荐服务的导出记录
// 每次导出现算，从不落库
type RecommendationProfile struct {
	UserID            int64                `json:"userId"`
	Email             string               `json:"email"`
	Education         []profile.Education  `json:"education"`
	Experience        []profile.Experience `json:"experience"`
	Skills            []string             `json:"skills"`
	Seniority         string               `json:"seniority"`
	YearsOfExperience float64              `json:"yearsOfExperience"`
	CareerGoals       string               `json:"careerGoals"`
	ResumeDescription string               `json:"resumeDescription"`
	ProfileComplete   bool                 `json:"profileComplete"`
	LastUpdated       string               `json:"lastUpdated"`
	LabIds            []string             `json:"labIds"`
}

type Metadata struct {
	GeneratedAt        string `json:"generatedAt"`
	FilterApplied      string `json:"filterApplied"`
	IncludedIncomplete bool   `json:"includedIncomplete"`
	RequestedBy        string `json:"requestedBy"`
	APIVersion         string `json:"apiVersion"`
}

type Export struct {
	Profiles []RecommendationProfile `json:"profiles"`
	Count    int                     `json:"count"`
	Metadata Metadata                `json:"metadata"`
}

// Caller 调用方的鉴权上下文
// 测试通道和 API Key 都视同管理员，网络边界已经替我们把过关了
type Caller struct {
	TestMode      bool
	APIKey        bool
	Authenticated bool
	// Roles 会话里的用户组
	Roles []string
	// Requester 写进导出元数据里的调用方标识
	Requester string
}
