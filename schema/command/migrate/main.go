package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/lifeline-net/lifeline-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("lifeline")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS lifeline`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO lifeline").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Contributor{},
		&schema.EmergencyRequest{},
		&schema.Response{},
		&schema.Partnership{},
	).Error; err != nil {
		panic(err)
	}

	// one open request per (requester, resource, blood group)
	if err := db.Model(schema.EmergencyRequest{}).
		Where(fmt.Sprintf("status = '%s'", schema.RequestOpen)).
		AddUniqueIndex("request_unique_while_open", "requester", "resource_type", "blood_group").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
