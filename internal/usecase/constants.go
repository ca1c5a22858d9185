package usecase

const (
	defaultPageSize = 20
	maxPageSize     = 100
)
