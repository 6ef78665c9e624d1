package http

import "testing"

func int64Ptr(v int64) *int64 { return &v }

func TestResolveOp(t *testing.T) {
	tcs := []struct {
		name string
		req  reportReq
		want op
	}{
		{"report_id wins over range", reportReq{ReportID: int64Ptr(3), StartDate: "2026-01-05", EndDate: "2026-01-11"}, opFetch},
		{"range generates", reportReq{StartDate: "2026-01-05", EndDate: "2026-01-11"}, opGenerate},
		{"partial range still generate", reportReq{StartDate: "2026-01-05"}, opGenerate},
		{"user only lists", reportReq{UserID: "u1"}, opList},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.resolveOp(); got != tc.want {
				t.Errorf("resolveOp = %s, want %s", got, tc.want)
			}
		})
	}
}
