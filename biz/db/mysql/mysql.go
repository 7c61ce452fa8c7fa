package mysql

import (
	"fmt"
	"time"

	"blog_api/biz/config"
	"blog_api/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Open(conf config.MySQLConf) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn(conf)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		return nil, fmt.Errorf("mysql migrate: %w", err)
	}

	return db, nil
}

func dsn(conf config.MySQLConf) string {
	if conf.DSN != "" {
		return conf.DSN
	}
	port := conf.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, port, conf.DBName)
}
