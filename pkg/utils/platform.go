//go:build !mobile

package utils

import "os"

// IsMobile 是否以移动端方式运行（没有键盘，不支持全屏切换）
// 桌面端可以设置 GOLF_MOBILE_EMULATE=1 在本地模拟
func IsMobile() bool {
	return os.Getenv("GOLF_MOBILE_EMULATE") == "1"
}
