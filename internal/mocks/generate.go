// Package mocks holds generated gomock doubles for the repository ports.
// Hand-written auth doubles live in the auth subpackage.
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=profile_repository_mock.go github.com/medflow/medflow/internal/ports ProfileRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=appointment_repository_mock.go github.com/medflow/medflow/internal/ports AppointmentRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=medical_record_repository_mock.go github.com/medflow/medflow/internal/ports MedicalRecordRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=leave_request_repository_mock.go github.com/medflow/medflow/internal/ports LeaveRequestRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=insurance_repository_mock.go github.com/medflow/medflow/internal/ports InsuranceRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=stats_repository_mock.go github.com/medflow/medflow/internal/ports StatsRepository
