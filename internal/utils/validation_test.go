package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

func TestValidateShiftTime(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "普通班次", start: "07:00:00", end: "15:00:00"},
		{name: "跨越午夜的班次", start: "23:00:00", end: "07:00:00"},
		{name: "开始时刻格式错误", start: "7:00", end: "15:00:00", wantErr: true},
		{name: "结束时刻格式错误", start: "07:00:00", end: "25:00:00", wantErr: true},
		{name: "空时刻", start: "", end: "15:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShiftTime(&domain.Shift{StartTime: tt.start, EndTime: tt.end})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestShiftDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  time.Duration
	}{
		{name: "普通班次", start: "07:00:00", end: "15:00:00", want: 8 * time.Hour},
		{name: "跨越午夜的班次", start: "23:00:00", end: "07:00:00", want: 8 * time.Hour},
		{name: "半小时粒度", start: "08:30:00", end: "12:00:00", want: 3*time.Hour + 30*time.Minute},
		{name: "起止相同", start: "08:00:00", end: "08:00:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftDuration(&domain.Shift{StartTime: tt.start, EndTime: tt.end})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestShiftDurationInvalid(t *testing.T) {
	_, err := ShiftDuration(&domain.Shift{StartTime: "bad", EndTime: "15:00:00"})
	require.Error(t, err)
}
