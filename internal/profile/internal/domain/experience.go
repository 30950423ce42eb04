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
	"math"
	"strconv"
	"time"
)

// TotalYearsOfExperience 从工作经历推导总年限
// 只统计有开始时间的条目，没有结束时间（或 isCurrent）按 now 算，
// 单条为负的区间钳到 0，不允许抵消其它条目的正区间
// 结果按 0.1 年取整
func TotalYearsOfExperience(entries []Experience, now time.Time) float64 {
	nowMonths := int(now.Year())*12 + int(now.Month())
	total := 0
	for _, e := range entries {
		start, ok := parseMonths(e.StartYear, e.StartMonth, e.StartDate)
		if !ok {
			continue
		}
		end, ok := parseMonths(e.EndYear, e.EndMonth, e.EndDate)
		if !ok || e.IsCurrent {
			end = nowMonths
		}
		d := end - start
		if d < 0 {
			d = 0
		}
		total += d
	}
	return math.Round(float64(total)/12*10) / 10
}

// parseMonths 把年/月字段换算成绝对月份数
// 优先用拆分后的字段，解析不了再试旧版的 YYYY-MM 整串
func parseMonths(year, month, legacy string) (int, bool) {
	if y, err := strconv.Atoi(year); err == nil {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			m = 1
		}
		return y*12 + m, true
	}
	if len(legacy) >= 7 {
		y, err1 := strconv.Atoi(legacy[:4])
		m, err2 := strconv.Atoi(legacy[5:7])
		if err1 == nil && err2 == nil && m >= 1 && m <= 12 {
			return y*12 + m, true
		}
	}
	return 0, false
}
