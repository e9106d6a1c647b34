// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
// Deploy edilen binary'nin yanında migration dosyası taşımak gerekmez.
package database

import "embed"

// EmbeddedMigrations, migrations/ dizinindeki SQL dosyalarını içerir.
// Kullanım: fs.Sub(EmbeddedMigrations, "migrations") ile alt dizine eriş.
//
//go:embed migrations/*.sql
var EmbeddedMigrations embed.FS
