package cmd

import "fmt"

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	AggregateWorkers     int
	DirectoryRefreshSpec string
}

// DSN renders the PostgreSQL connection string of the config.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}
