package utility

// Contains kiểm tra item có xuất hiện trong slice không.
// Dùng cho các whitelist/blacklist ngắn (field bị cấm, operator được phép),
// quét tuyến tính là đủ.
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
