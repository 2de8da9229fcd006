package port

import "seokit/internal/domain"

type ReportStore interface {
	Put(report domain.StoredReport) error

	Get(path string) (domain.StoredReport, error)

	Delete(path string) error

	List() ([]domain.StoredReport, error)

	Clear() error

	Close() error
}
