package response

import (
	"encoding/json"
	"testing"
)

func TestEnvelopeExactlyOneType(t *testing.T) {
	cases := []struct {
		name string
		env  Envelope
		typ  string
	}{
		{"Answer", Answer("어제는 파스타를 먹었어요.", "답변 생성 완료"), TypeAnswer},
		{"Data", Data("일기 내용을 전달했습니다."), TypeData},
		{"Error", Error("요청 처리 중 오류가 발생했습니다."), TypeError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.env.Type != tc.typ {
				t.Errorf("expected type %q, got %q", tc.typ, tc.env.Type)
			}
			if tc.env.Message == "" {
				t.Errorf("message must be non-empty")
			}
		})
	}
}

func TestDataAndErrorHaveEmptyContent(t *testing.T) {
	if got := Data("ok").Content; got != "" {
		t.Errorf("data envelope content must be empty, got %q", got)
	}
	if got := Error("boom").Content; got != "" {
		t.Errorf("error envelope content must be empty, got %q", got)
	}
}

func TestResultJSONShape(t *testing.T) {
	ok, _ := json.Marshal(Result{Success: true, Response: "hello"})
	if string(ok) != `{"success":true,"response":"hello"}` {
		t.Errorf("unexpected success body: %s", ok)
	}

	fail, _ := json.Marshal(Result{Success: false, Error: "boom"})
	if string(fail) != `{"success":false,"error":"boom"}` {
		t.Errorf("unexpected failure body: %s", fail)
	}
}
