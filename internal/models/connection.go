package models

import "time"

// ConnectionConfig is a named connection profile. Password-like fields are
// kept in the OS keyring, not in the database.
type ConnectionConfig struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	Name             string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Protocol         string    `gorm:"size:8;not null;default:http" json:"protocol"`
	Address          string    `gorm:"size:512" json:"address"`
	EnableAuth       bool      `json:"enableAuth"`
	Username         string    `gorm:"size:255" json:"username"`
	Password         string    `gorm:"-" json:"password"`
	Database         string    `gorm:"size:255" json:"database"`
	CACert           string    `gorm:"type:text" json:"caCert,omitempty"`
	ClientCert       string    `gorm:"type:text" json:"clientCert,omitempty"`
	ClientKey        string    `gorm:"type:text" json:"clientKey,omitempty"`
	InsecureTLS      bool      `json:"insecureTls"`
	InsecureHostname bool      `json:"insecureHostname"`
	EnableSSH        bool      `json:"enableSSH"`
	SSHHost          string    `gorm:"size:255" json:"sshHost,omitempty"`
	SSHPort          int       `json:"sshPort,omitempty"`
	SSHUsername      string    `gorm:"size:255" json:"sshUsername,omitempty"`
	SSHPassword      string    `gorm:"-" json:"sshPassword,omitempty"`
	SSHKeyPath       string    `gorm:"size:1024" json:"sshKeyPath,omitempty"`
	SSHKeyPassphrase string    `gorm:"-" json:"sshKeyPassphrase,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

type Measurement struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type RetentionPolicy struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Replication int    `json:"replication"`
	IsDefault   bool   `json:"isDefault"`
}

type Database struct {
	Name              string            `json:"name"`
	Measurements      []Measurement     `json:"measurements"`
	RetentionPolicies []RetentionPolicy `json:"retentionPolicies"`
}

// DatabaseMetadata is what the engine reports for a single database.
type DatabaseMetadata struct {
	RetentionPolicies []RetentionPolicy `json:"retention_policies"`
	Measurements      []string          `json:"measurements"`
}
