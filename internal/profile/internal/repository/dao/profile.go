package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRecordNotFound 通用的数据没找到
var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./profile.go -package=daomocks -destination=mocks/profile.mock.go ProfileDAO
type ProfileDAO interface {
	FindByUid(ctx context.Context, uid int64) (UserProfile, error)
	// UpsertResume 按 uid 覆盖写简历相关的列，记录不存在就建一条
	// 新版结构化和旧版 JSON 串两列都写
	UpsertResume(ctx context.Context, p UserProfile) error
	// UpdateFilePointer 只动简历文件指针相关的列
	UpdateFilePointer(ctx context.Context, uid int64, fileName, fileURL string) error
	// FindAll 导出用的全表扫描
	FindAll(ctx context.Context) ([]UserProfile, error)
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{db: db}
}

func (d *GORMProfileDAO) FindByUid(ctx context.Context, uid int64) (UserProfile, error) {
	var p UserProfile
	err := d.db.WithContext(ctx).First(&p, "uid = ?", uid).Error
	return p, err
}

func (d *GORMProfileDAO) UpsertResume(ctx context.Context, p UserProfile) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"resume", "resume_data", "resume_last_updated", "utime",
			}),
		}).Create(&p).Error
}

func (d *GORMProfileDAO) UpdateFilePointer(ctx context.Context, uid int64, fileName, fileURL string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&UserProfile{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"resume_file_name":    fileName,
			"resume_url":          fileURL,
			"resume_last_updated": now,
			"utime":               now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *GORMProfileDAO) FindAll(ctx context.Context) ([]UserProfile, error) {
	var ps []UserProfile
	err := d.db.WithContext(ctx).Find(&ps).Error
	return ps, err
}

// UserProfile 门户用户记录
// roles/skills/lab_ids 存 JSON 数组，repository 层负责转换
type UserProfile struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"uniqueIndex"`
	Email string `gorm:"type:varchar(256)"`
	Roles string `gorm:"type:varchar(512)"`
	// Resume 新版结构化档案，JSON
	Resume string `gorm:"type:text"`
	// ResumeData 旧版 JSON 串，兼容只认旧格式的读取方
	ResumeData        string `gorm:"type:text"`
	ResumeFileName    string `gorm:"type:varchar(512)"`
	ResumeUrl         string `gorm:"type:varchar(1024)"`
	ResumeLastUpdated int64
	Skills            string `gorm:"type:text"`
	ProfileComplete   bool
	Seniority         string `gorm:"type:varchar(64)"`
	YearsOfExperience sql.NullFloat64
	CareerGoals       string `gorm:"type:text"`
	ResumeDescription string `gorm:"type:text"`
	LabIds            string `gorm:"type:varchar(1024)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
