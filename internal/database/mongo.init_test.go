package database

import (
	"testing"
)

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single"); got != 1 {
		t.Errorf("parseOrder(single) = %d, muốn 1", got)
	}
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("parseOrder(single,order:-1) = %d, muốn -1", got)
	}
}

func TestParseIndexTag_Single(t *testing.T) {
	configs := parseIndexTag("single")
	if len(configs) != 1 {
		t.Fatalf("parseIndexTag trả về %d cấu hình, muốn 1", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Error("cấu hình thiếu key 'single'")
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("parseIndexTag trả về %d cấu hình, muốn 1", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("cấu hình thiếu key 'unique'")
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Error("cấu hình thiếu key 'sparse'")
	}
}

func TestParseIndexTag_CompoundGroup(t *testing.T) {
	configs := parseIndexTag("compound:user_call_center_unique")
	if len(configs) != 1 {
		t.Fatalf("parseIndexTag trả về %d cấu hình, muốn 1", len(configs))
	}
	if got := configs[0]["compound"]; got != "user_call_center_unique" {
		t.Errorf("compound = %q, muốn %q", got, "user_call_center_unique")
	}
}

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	configs := parseIndexTag("single;compound:group_a")
	if len(configs) != 2 {
		t.Fatalf("parseIndexTag trả về %d cấu hình, muốn 2", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Error("cấu hình đầu thiếu key 'single'")
	}
	if got := configs[1]["compound"]; got != "group_a" {
		t.Errorf("compound = %q, muốn %q", got, "group_a")
	}
}
