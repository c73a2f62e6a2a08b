package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCallCenter là quan hệ sở hữu giữa người dùng và tổng đài (n-n).
// Người dùng chỉ được thao tác trên tổng đài khi tồn tại bản ghi quan hệ này.
// Mỗi cặp (userId, callCenterId) là duy nhất.
type UserCallCenter struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId" index:"compound:user_call_center_unique"`
	CallCenterID primitive.ObjectID `json:"callCenterId" bson:"callCenterId" index:"compound:user_call_center_unique"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
