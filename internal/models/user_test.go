package models

import "testing"

func TestUserUpdateFieldsStagesOnlySuppliedValues(t *testing.T) {
	update := UserUpdate{
		Username: "amit",
		Email:    "Amit@Example.COM",
	}

	fields := update.Fields()

	if len(fields) != 2 {
		t.Fatalf("expected 2 staged fields, got %d: %v", len(fields), fields)
	}
	if fields["username"] != "amit" {
		t.Errorf("username not staged: %v", fields["username"])
	}
	if fields["email"] != "amit@example.com" {
		t.Errorf("email not lowercased: %v", fields["email"])
	}
	if _, ok := fields["phone_no"]; ok {
		t.Error("unsupplied phone_no was staged")
	}
}

func TestUserUpdateFieldsEmpty(t *testing.T) {
	if fields := (UserUpdate{}).Fields(); len(fields) != 0 {
		t.Errorf("empty update staged fields: %v", fields)
	}
}

func TestUserUpdateFieldsStagesAddress(t *testing.T) {
	update := UserUpdate{Address: map[string]any{"village": "Rampur"}}
	fields := update.Fields()
	addr, ok := fields["address"].(map[string]any)
	if !ok || addr["village"] != "Rampur" {
		t.Errorf("address not staged: %v", fields["address"])
	}
}

func TestUserUpdateValidationErrors(t *testing.T) {
	update := UserUpdate{Role: "wizard", Gender: "unknown"}
	errs := update.ValidationErrors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", errs)
	}

	if errs := (UserUpdate{Role: RoleSarpanch, Gender: GenderUnspecified}).ValidationErrors(); len(errs) != 0 {
		t.Errorf("valid enum values rejected: %v", errs)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleVillager, RoleAgent, RolePanchayatMember, RoleSarpanch, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("role %q rejected", role)
		}
	}
	if ValidRole("superuser") {
		t.Error("unknown role accepted")
	}
}

func TestValidGender(t *testing.T) {
	for _, gender := range []string{GenderMale, GenderFemale, GenderOther, GenderUnspecified} {
		if !ValidGender(gender) {
			t.Errorf("gender %q rejected", gender)
		}
	}
	if ValidGender("n/a") {
		t.Error("unknown gender accepted")
	}
}
