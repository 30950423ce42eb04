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

// UserRecord 存储层用户记录的领域形态
// 兼容窗口期内 Resume（结构化）和 ResumeData（旧版 JSON 串）并存，
// 写入方两种都写，读取方按 ParseStored 的优先级取
type UserRecord struct {
	Uid               int64
	Email             string
	Roles             []string
	Resume            string
	ResumeData        string
	ResumeFileName    string
	ResumeURL         string
	ResumeLastUpdated int64
	Skills            []string
	ProfileComplete   bool
	Seniority         string
	// YearsOfExperience 显式填过才有效，HasYears 为 false 时由工作经历推导
	YearsOfExperience float64
	HasYears          bool
	CareerGoals       string
	ResumeDescription string
	LabIds            []string
}
