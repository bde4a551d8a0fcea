package context

import (
	"context"

	"github.com/muhammadheryan/course-platform/constant"
)

func GetAdminID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.AdminIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
