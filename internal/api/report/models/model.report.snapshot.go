// Package models - model snapshot thống kê thuộc domain report.
package models

import (
	reportdto "realty_training/internal/api/report/dto"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SnapshotKindAdminOverview là loại snapshot duy nhất hiện có
const SnapshotKindAdminOverview = "admin_overview"

// ReportSnapshot là một bản chụp thống kê toàn nền tảng do worker ghi
// định kỳ. Các endpoint thống kê live luôn tính lại, không đọc snapshot.
type ReportSnapshot struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Kind        string               `json:"kind" bson:"kind" index:"single:1"`
	Stats       reportdto.AdminStats `json:"stats" bson:"stats"`
	GeneratedAt int64                `json:"generatedAt" bson:"generatedAt" index:"single:-1"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}
