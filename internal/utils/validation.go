package utils

import (
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
)

const shiftTimeLayout = "15:04:05"

// ValidateShiftTime 检查班次起止时刻的格式
// 结束时刻早于开始时刻是允许的，表示班次跨越午夜、结束于次日
func ValidateShiftTime(shift *domain.Shift) error {
	if _, err := time.Parse(shiftTimeLayout, shift.StartTime); err != nil {
		return errors.New("班次开始时刻格式错误，应为 HH:MM:SS")
	}
	if _, err := time.Parse(shiftTimeLayout, shift.EndTime); err != nil {
		return errors.New("班次结束时刻格式错误，应为 HH:MM:SS")
	}
	return nil
}

// ShiftDuration 计算班次时长，跨越午夜的班次按结束于次日计算
func ShiftDuration(shift *domain.Shift) (time.Duration, error) {
	startTime, err := time.Parse(shiftTimeLayout, shift.StartTime)
	if err != nil {
		return 0, errors.New("班次开始时刻格式错误，应为 HH:MM:SS")
	}
	endTime, err := time.Parse(shiftTimeLayout, shift.EndTime)
	if err != nil {
		return 0, errors.New("班次结束时刻格式错误，应为 HH:MM:SS")
	}

	duration := endTime.Sub(startTime)
	if duration < 0 {
		duration += 24 * time.Hour
	}
	return duration, nil
}
