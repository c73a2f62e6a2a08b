package registry

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "one")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	isNew, err = r.Register("a", "two")
	if err != nil {
		t.Fatalf("Register lần hai lỗi: %v", err)
	}
	if isNew {
		t.Error("Register trùng tên phải trả về isNew = false")
	}

	got, exists := r.Get("a")
	if !exists {
		t.Fatal("Get không tìm thấy item đã đăng ký")
	}
	if got != "two" {
		t.Errorf("Get = %q, muốn giá trị ghi đè %q", got, "two")
	}

	if _, err := r.Register("", "x"); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get với tên chưa đăng ký phải trả về exists = false")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	got, err := r.GetOrCreate("n", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if got != 42 {
		t.Errorf("GetOrCreate = %d, muốn 42", got)
	}

	// Lần hai không được gọi creator nữa
	if _, err := r.GetOrCreate("n", creator); err != nil {
		t.Fatalf("GetOrCreate lần hai lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("creator được gọi %d lần, muốn 1", calls)
	}

	// Creator lỗi thì không cache kết quả
	wantErr := errors.New("tạo thất bại")
	if _, err := r.GetOrCreate("bad", func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("GetOrCreate phải trả về lỗi từ creator, got %v", err)
	}
}

func TestRegistry_ClearVaClearAll(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "one")
	r.Register("b", "two")

	deleted, err := r.Clear("a", nil)
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted {
		t.Error("Clear item tồn tại phải trả về deleted = true")
	}
	if _, exists := r.Get("a"); exists {
		t.Error("item vẫn còn sau Clear")
	}

	deleted, _ = r.Clear("a", nil)
	if deleted {
		t.Error("Clear item không tồn tại phải trả về deleted = false")
	}

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll lỗi: %v", err)
	}
	if count != 1 {
		t.Errorf("ClearAll xóa %d item, muốn 1", count)
	}
}
