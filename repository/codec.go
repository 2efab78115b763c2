package repository

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"nrt-dosing/domain"
)

func EncodeRecommendation(rec domain.DosingRecommendation) (string, error) {
	b, err := msgpack.Marshal(&rec)
	if err != nil {
		return "", fmt.Errorf("encode recommendation: %w", err)
	}
	return string(b), nil
}

func DecodeRecommendation(value string) (domain.DosingRecommendation, error) {
	var rec domain.DosingRecommendation
	if err := msgpack.Unmarshal([]byte(value), &rec); err != nil {
		return domain.DosingRecommendation{}, fmt.Errorf("decode recommendation: %w", err)
	}
	return rec, nil
}
