package repository

import (
	"context"

	"gorm.io/gorm"
)

// DB hands out connections to the repositories. Every operation pins one
// pooled connection for its duration because procedure OUT parameters live in
// session variables.
type DB struct {
	gorm *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{gorm: db}
}

func (d *DB) withConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		// a fresh session per statement, all on the pinned connection
		return fn(conn.Session(&gorm.Session{}))
	})
}

// withTx runs fn inside a transaction, which also pins a single connection.
func (d *DB) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
