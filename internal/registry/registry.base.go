// Package registry cung cấp một registry generic thread-safe cho các
// singleton của ứng dụng. Server dùng nó làm registry collection MongoDB:
// InitCollections đăng ký một lần lúc khởi động, các service constructor
// tra cứu theo tên collection (global.RegistryCollections).
package registry

import (
	"fmt"
	"sync"

	"realty_training/internal/common"
)

// Registry quản lý items theo tên, an toàn cho truy cập đồng thời.
// Type parameter T là loại item được quản lý, ví dụ *mongo.Collection.
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo một registry rỗng cho kiểu T
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item theo tên, ghi đè nếu tên đã tồn tại.
// Trả về isNew = false khi ghi đè, lỗi khi tên rỗng.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên. exists = false khi tên chưa được đăng ký,
// khi đó item là zero value của T.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}
