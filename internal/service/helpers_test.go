package service

import (
	"time"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
)

func stringPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func adminPrincipal() domainauth.Principal {
	return domainauth.Principal{ID: "admin-1", DisplayName: "Alice Admin", Role: domainauth.RoleAdmin}
}

func doctorPrincipal() domainauth.Principal {
	return domainauth.Principal{ID: "doctor-1", DisplayName: "Sarah Johnson", Role: domainauth.RoleDoctor}
}

func nursePrincipal() domainauth.Principal {
	return domainauth.Principal{ID: "nurse-1", DisplayName: "Nina Nurse", Role: domainauth.RoleNurse}
}

func receptionistPrincipal() domainauth.Principal {
	return domainauth.Principal{ID: "reception-1", DisplayName: "Rita Front", Role: domainauth.RoleReceptionist}
}

func patientPrincipal() domainauth.Principal {
	return domainauth.Principal{ID: "patient-1", DisplayName: "Pat Doe", Role: domainauth.RolePatient}
}
