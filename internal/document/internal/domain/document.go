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
	"io"
	"path"
	"strings"
)

// MaxFileSize 简历文件上限 10MB，超了直接拒，不发任何网络请求
const MaxFileSize = 10 << 20

// File 待上传的简历文件
type File struct {
	Name        string
	Size        int64
	ContentType string
	Data        io.Reader
}

// UploadGrant 协商端点发的短时效直传凭证
type UploadGrant struct {
	UploadURL string
	Key       string
}

// ViewMode 查看方式按扩展名分类
type ViewMode string

const (
	// ViewModeInline pdf 浏览器内嵌打开
	ViewModeInline ViewMode = "inline"
	// ViewModeDownload doc/docx 强制下载
	ViewModeDownload ViewMode = "download"
	// ViewModeDirect 其它扩展名尽力直连
	ViewModeDirect ViewMode = "direct"
)

type View struct {
	URL  string
	Mode ViewMode
}

var allowedExts = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Ext 统一成小写扩展名
func Ext(name string) string {
	return strings.ToLower(path.Ext(name))
}

func AllowedExt(name string) bool {
	_, ok := allowedExts[Ext(name)]
	return ok
}
