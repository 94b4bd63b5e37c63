// Package models - model StatusCheck (liveness ping từ client) thuộc domain system.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusCheck là một lần ping từ client, giữ lại để tương thích với
// client cũ của nền tảng.
type StatusCheck struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientName string             `json:"clientName" bson:"clientName"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
