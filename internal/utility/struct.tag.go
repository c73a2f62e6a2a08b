package utility

import (
	"reflect"
	"strings"
)

// JSONFieldName trả về json tag của field theo tên field trong struct.
// Dùng để map lỗi validate về đúng tên field mà client gửi lên.
// Trả về chuỗi rỗng nếu không tìm thấy field hoặc field không có json tag.
func JSONFieldName(s interface{}, fieldName string) string {
	if s == nil {
		return ""
	}
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	return jsonFieldNameFromType(t, fieldName)
}

// jsonFieldNameFromType tìm json tag của field theo tên, duyệt cả struct lồng nhau.
func jsonFieldNameFromType(t reflect.Type, fieldName string) string {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == fieldName {
			tag := f.Tag.Get("json")
			if tag == "" || tag == "-" {
				return ""
			}
			return strings.Split(tag, ",")[0]
		}

		ft := f.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			if name := jsonFieldNameFromType(ft, fieldName); name != "" {
				return name
			}
		}
	}
	return ""
}
