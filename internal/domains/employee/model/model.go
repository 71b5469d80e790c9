package model

import "time"

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID   = "employee_id"
	FieldName = "e_name"
)

type Employee struct {
	ID       int64      `db:"employee_id" generated:"true"`
	Name     string     `db:"e_name"`
	Email    *string    `db:"email"`
	Phone    *string    `db:"phone_no"`
	RoleID   *int64     `db:"role_id"`
	Salary   *float64   `db:"salary"`
	HireDate *time.Time `db:"hire_date"`
	RoleName *string    `db:"role_name"   table:"roles"`
}

func (Employee) GetJoinQuery() string {
	return "LEFT JOIN roles ON roles.role_id = employees.role_id"
}
