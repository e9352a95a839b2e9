package dto

import "math"

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalPage int `json:"total_page"`
	TotalData int `json:"total_data"`
}

func NewPagination(params QueryParams, totalData int) Pagination {
	return Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		TotalPage: CalculateTotalPage(totalData, params.Limit),
		TotalData: totalData,
	}
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}
