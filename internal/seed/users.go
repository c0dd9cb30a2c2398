package seed

import "github.com/healthclaim/portal-api/internal/core/domain"

// DemoUser is an account created by Run, with its plaintext password.
type DemoUser struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
	Profile  domain.Profile
}

// DemoUsers are the accounts the portal's login screen advertises.
var DemoUsers = []DemoUser{
	{
		Email:    "patient@demo.com",
		Password: "demo123",
		Name:     "John Smith",
		Role:     domain.RolePatient,
		Profile: domain.Profile{
			"firstName":         "John",
			"lastName":          "Smith",
			"dateOfBirth":       "1985-03-15",
			"phone":             "(555) 123-4567",
			"address":           "123 Main St, Anytown, ST 12345",
			"memberId":          "MEM123456789",
			"groupNumber":       "GRP001",
			"insuranceProvider": "HealthPlus Insurance",
			"planType":          "Premium Care Plan",
			"effectiveDate":     "2024-01-01",
			"copay":             "$25",
			"deductible":        "$1,500",
			"outOfPocketMax":    "$5,000",
		},
	},
	{
		Email:    "jane.doe@example.com",
		Password: "patient123",
		Name:     "Jane Doe",
		Role:     domain.RolePatient,
		Profile: domain.Profile{
			"firstName":         "Jane",
			"lastName":          "Doe",
			"dateOfBirth":       "1990-07-22",
			"phone":             "(555) 987-6543",
			"address":           "456 Oak Ave, Springfield, ST 67890",
			"memberId":          "MEM987654321",
			"groupNumber":       "GRP002",
			"insuranceProvider": "MediCare Plus",
			"planType":          "Standard Plan",
			"effectiveDate":     "2024-02-15",
			"copay":             "$30",
			"deductible":        "$2,000",
			"outOfPocketMax":    "$6,500",
		},
	},
	{
		Email:    "provider@demo.com",
		Password: "provider123",
		Name:     "Dr. Sarah Wilson",
		Role:     domain.RoleProvider,
		Profile: domain.Profile{
			"firstName":       "Dr. Sarah",
			"lastName":        "Wilson",
			"specialty":       "Internal Medicine",
			"licenseNumber":   "MD12345",
			"npiNumber":       "1234567890",
			"clinic":          "Central Medical Center",
			"address":         "789 Medical Plaza, Healthcare City, ST 11111",
			"phone":           "(555) 246-8100",
			"fax":             "(555) 246-8101",
			"yearsExperience": 15,
			"boardCertified":  true,
		},
	},
	{
		Email:    "dr.johnson@healthcenter.com",
		Password: "health123",
		Name:     "Dr. Michael Johnson",
		Role:     domain.RoleProvider,
		Profile: domain.Profile{
			"firstName":       "Dr. Michael",
			"lastName":        "Johnson",
			"specialty":       "Cardiology",
			"licenseNumber":   "MD67890",
			"npiNumber":       "0987654321",
			"clinic":          "Heart Health Institute",
			"address":         "321 Cardiac Way, Wellness Town, ST 22222",
			"phone":           "(555) 369-2580",
			"fax":             "(555) 369-2581",
			"yearsExperience": 20,
			"boardCertified":  true,
		},
	},
	{
		Email:    "payor@demo.com",
		Password: "payor123",
		Name:     "Lisa Thompson",
		Role:     domain.RolePayor,
		Profile: domain.Profile{
			"firstName":  "Lisa",
			"lastName":   "Thompson",
			"title":      "Claims Administrator",
			"department": "Claims Processing",
			"company":    "HealthPlus Insurance",
			"employeeId": "EMP789012",
			"phone":      "(555) 147-2583",
			"extension":  "1205",
			"address":    "999 Insurance Blvd, Coverage City, ST 33333",
			"region":     "Northeast",
			"authority":  "Senior Claims Reviewer",
		},
	},
	{
		Email:    "admin@insurance.com",
		Password: "insurance123",
		Name:     "Robert Chen",
		Role:     domain.RolePayor,
		Profile: domain.Profile{
			"firstName":  "Robert",
			"lastName":   "Chen",
			"title":      "Senior Underwriter",
			"department": "Risk Assessment",
			"company":    "MediCare Plus",
			"employeeId": "EMP456789",
			"phone":      "(555) 789-4561",
			"extension":  "2108",
			"address":    "777 Underwriter St, Policy Town, ST 44444",
			"region":     "Southwest",
			"authority":  "Policy Authorization",
		},
	},
}
