package service

import (
	"errors"
	"fmt"
)

// 领域错误，处理器据此映射 HTTP 状态码和稳定的错误类别
var (
	ErrNotFound            = errors.New("记录不存在")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrPaymentTypeNotFound = errors.New("支付方式不存在")
	ErrDuplicateName       = errors.New("名称已存在")
	ErrEmptyName           = errors.New("名称不能为空")
	ErrInvalidDate         = errors.New("日期格式错误，应为: YYYY-MM-DD")
	ErrStoreUnavailable    = errors.New("数据库服务不可用，请稍后重试")
)

// InUseError 引用完整性冲突：仍有消费记录的快照引用该分类/支付方式，删除被拒绝
type InUseError struct {
	Resource string // 被引用的资源名，如 "分类"
	Count    int64  // 引用它的消费记录数
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("无法删除%s：仍有 %d 条消费记录引用", e.Resource, e.Count)
}
