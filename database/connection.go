package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/devfolio/metal/env"
)

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB
	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

// NewConnectionFromGorm wraps an existing gorm handle, usually a transaction,
// so repositories can run against it.
func NewConnectionFromGorm(db *gorm.DB) *Connection {
	return &Connection{driver: db}
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()

	if err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	}

	return true
}

func (c *Connection) Ping() error {
	sqlDB, err := c.driver.DB()

	if err != nil {
		return fmt.Errorf("error retrieving the db driver: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("error pinging the db driver: %w", err)
	}

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
