package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Param is one IN argument of a stored procedure. Name is only used in error
// messages; arguments are bound by position in declaration order.
type Param struct {
	Name  string
	Value any
}

// Call describes one CALL statement. Out lists the OUT parameters, which MySQL
// hands back through session variables of the same name.
type Call struct {
	Procedure string
	In        []Param
	Out       []string
}

func (c Call) statement() (string, []any) {
	placeholders := make([]string, 0, len(c.In)+len(c.Out))
	args := make([]any, 0, len(c.In))
	for _, p := range c.In {
		placeholders = append(placeholders, "?")
		args = append(args, p.Value)
	}
	for _, name := range c.Out {
		placeholders = append(placeholders, "@"+name)
	}
	return fmt.Sprintf("CALL %s(%s)", c.Procedure, strings.Join(placeholders, ", ")), args
}

// reset clears the OUT variables so a pooled connection never reports the
// status of an earlier call.
func (c Call) reset() string {
	parts := make([]string, len(c.Out))
	for i, name := range c.Out {
		parts[i] = "@" + name + " = NULL"
	}
	return "SET " + strings.Join(parts, ", ")
}

func (c Call) selectOut() string {
	parts := make([]string, len(c.Out))
	for i, name := range c.Out {
		parts[i] = "@" + name + " AS " + name
	}
	return "SELECT " + strings.Join(parts, ", ")
}

// execProc runs a procedure without a result set and scans its OUT
// parameters into out. tx must be pinned to one connection.
func execProc(tx *gorm.DB, call Call, out any) error {
	if err := resetOut(tx, call); err != nil {
		return err
	}

	stmt, args := call.statement()
	if err := tx.Exec(stmt, args...).Error; err != nil {
		return fmt.Errorf("%s: %w", call.Procedure, err)
	}

	return readOut(tx, call, out)
}

// queryProc runs a procedure and projects every row of its result set into T,
// binding columns by name.
func queryProc[T any](tx *gorm.DB, call Call, out any) ([]T, error) {
	if err := resetOut(tx, call); err != nil {
		return nil, err
	}

	stmt, args := call.statement()
	rows, err := tx.Raw(stmt, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.Procedure, err)
	}

	items, err := scanAll[T](tx, rows)
	// the result set has to be drained before the connection takes another query
	if cerr := rows.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call.Procedure, err)
	}

	if err := readOut(tx, call, out); err != nil {
		return nil, err
	}
	return items, nil
}

func scanAll[T any](tx *gorm.DB, rows *sql.Rows) ([]T, error) {
	items := make([]T, 0)
	for rows.Next() {
		var item T
		if err := tx.ScanRows(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func resetOut(tx *gorm.DB, call Call) error {
	if len(call.Out) == 0 {
		return nil
	}
	if err := tx.Exec(call.reset()).Error; err != nil {
		return fmt.Errorf("%s: reset outputs: %w", call.Procedure, err)
	}
	return nil
}

func readOut(tx *gorm.DB, call Call, out any) error {
	if len(call.Out) == 0 || out == nil {
		return nil
	}
	if err := tx.Raw(call.selectOut()).Scan(out).Error; err != nil {
		return fmt.Errorf("%s: read outputs: %w", call.Procedure, err)
	}
	return nil
}

// Absent sentinels for optional IN parameters.

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v string) sql.NullString {
	if strings.TrimSpace(v) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

// Status outputs. Each procedure family reports success its own way.

type amenityStatus struct {
	Status  sql.NullInt64  `gorm:"column:Status"`
	Message sql.NullString `gorm:"column:Message"`
}

func (s amenityStatus) ok() bool { return s.Status.Valid && s.Status.Int64 == 1 }

type roomStatus struct {
	StatusCode sql.NullInt64  `gorm:"column:StatusCode"`
	Message    sql.NullString `gorm:"column:Message"`
}

func (s roomStatus) ok() bool { return s.StatusCode.Valid && s.StatusCode.Int64 == 0 }

type userStatus struct {
	ErrorMessage sql.NullString `gorm:"column:ErrorMessage"`
}

func (s userStatus) ok() bool {
	return !s.ErrorMessage.Valid || strings.TrimSpace(s.ErrorMessage.String) == ""
}

// messageOr returns the store's message, or fallback when it sent none.
func messageOr(msg sql.NullString, fallback string) string {
	if msg.Valid && strings.TrimSpace(msg.String) != "" {
		return msg.String
	}
	return fallback
}
