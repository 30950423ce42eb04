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

package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/unilab/portal/internal/recommendation/internal/domain"
)

// csvHeader 列顺序是对外契约,下游按位置解析
const csvHeader = "userId,email,education,experience,skills,seniority,yearsOfExperience,careerGoals,profileComplete,lastUpdated"

// EncodeCSV 表头加每档案一行
// 嵌套的列表字段以 JSON 串的形式内嵌在单元格里,顶层列只做逗号拼接
func EncodeCSV(profiles []domain.RecommendationProfile) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteString("\n")
	for _, p := range profiles {
		cols := []string{
			strconv.FormatInt(p.UserID, 10),
			p.Email,
			jsonCell(p.Education),
			jsonCell(p.Experience),
			jsonCell(p.Skills),
			p.Seniority,
			strconv.FormatFloat(p.YearsOfExperience, 'f', -1, 64),
			p.CareerGoals,
			strconv.FormatBool(p.ProfileComplete),
			p.LastUpdated,
		}
		sb.WriteString(strings.Join(cols, ","))
		sb.WriteString("\n")
	}
	return sb.String()
}

func jsonCell(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
