package dto

import (
	"hotel/internal/domains/employee/model"
	"hotel/shared/constant"
)

type EmployeeResponse struct {
	ID       int64    `json:"Employee_ID"`
	Name     string   `json:"E_Name"`
	Email    *string  `json:"Email"`
	Phone    *string  `json:"Phone_No"`
	RoleID   *int64   `json:"Role_ID"`
	Salary   *float64 `json:"Salary"`
	HireDate *string  `json:"Hire_Date"`
	RoleName *string  `json:"Role_Name"`
}

func (r *EmployeeResponse) FromModel(employee model.Employee) {
	r.ID = employee.ID
	r.Name = employee.Name
	r.Email = employee.Email
	r.Phone = employee.Phone
	r.RoleID = employee.RoleID
	r.Salary = employee.Salary
	r.RoleName = employee.RoleName

	if employee.HireDate != nil {
		hireDate := employee.HireDate.Format(constant.DateFormat)
		r.HireDate = &hireDate
	}
}

func FromModels(employees []model.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		res[i].FromModel(employee)
	}

	return res
}
