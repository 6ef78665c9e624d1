package agent

import "testing"

func TestRequest_Text(t *testing.T) {
	tcs := []struct {
		name string
		req  Request
		want string
	}{
		{"content wins", Request{Content: "오늘 산책했다", Input: "ignored"}, "오늘 산책했다"},
		{"inputText alias", Request{InputText: "어제 뭐 했어?"}, "어제 뭐 했어?"},
		{"input alias", Request{Input: "비 오는 날"}, "비 오는 날"},
		{"user_input alias", Request{UserInput: "주말 계획"}, "주말 계획"},
		{"whitespace skipped", Request{Content: "   ", Input: "실제 내용"}, "실제 내용"},
		{"all empty", Request{}, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.Text(); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequest_BaseDate(t *testing.T) {
	if got := (Request{CurrentDate: "2026-01-14", RecordDate: "2026-01-13"}).BaseDate(); got != "2026-01-14" {
		t.Errorf("BaseDate() = %q, want current_date", got)
	}
	if got := (Request{RecordDate: "2026-01-13"}).BaseDate(); got != "2026-01-13" {
		t.Errorf("BaseDate() = %q, want record_date fallback", got)
	}
	if got := (Request{}).BaseDate(); got != "" {
		t.Errorf("BaseDate() = %q, want empty", got)
	}
}
