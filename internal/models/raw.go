package models

import (
	"time"
)

// Modelos de staging: las tablas stg_* las escribe el servicio de ingesta,
// este servicio solo las lee.

type RawCustomer struct {
	RowID         int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	CustomerID    *int64     `gorm:"column:customer_id"`
	CustomerKey   string     `gorm:"column:customer_key;type:varchar(50)"`
	FirstName     string     `gorm:"column:first_name;type:varchar(100)"`
	LastName      string     `gorm:"column:last_name;type:varchar(100)"`
	MaritalStatus string     `gorm:"column:marital_status;type:varchar(10)"`
	Gender        string     `gorm:"column:gender;type:varchar(10)"`
	CreatedDate   *time.Time `gorm:"column:created_date"`
}

func (RawCustomer) TableName() string {
	return "stg_customer"
}

type RawProduct struct {
	RowID     int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	ProductID *int64     `gorm:"column:product_id"`
	// ProductKey trae el prefijo de categoría, ej "BK-R1-12345"
	ProductKey string     `gorm:"column:product_key;type:varchar(50)"`
	Name       string     `gorm:"column:name;type:varchar(255)"`
	Cost       *float64   `gorm:"column:cost"`
	LineCode   string     `gorm:"column:line_code;type:varchar(10)"`
	StartDate  *time.Time `gorm:"column:start_date"`
	EndDate    *time.Time `gorm:"column:end_date"`
}

func (RawProduct) TableName() string {
	return "stg_product"
}

type RawSalesLine struct {
	RowID       int64    `gorm:"column:row_id;primaryKey;autoIncrement"`
	OrderNumber string   `gorm:"column:order_number;type:varchar(50)"`
	ProductKey  string   `gorm:"column:product_key;type:varchar(50)"`
	CustomerID  int64    `gorm:"column:customer_id"`
	OrderDate   int64    `gorm:"column:order_date"`
	ShipDate    int64    `gorm:"column:ship_date"`
	DueDate     int64    `gorm:"column:due_date"`
	Amount      *float64 `gorm:"column:amount"`
	Quantity    int64    `gorm:"column:quantity"`
	Price       *float64 `gorm:"column:price"`
}

func (RawSalesLine) TableName() string {
	return "stg_sales_line"
}

type RawLocation struct {
	RowID      int64  `gorm:"column:row_id;primaryKey;autoIncrement"`
	CustomerID string `gorm:"column:customer_id;type:varchar(50)"`
	Country    string `gorm:"column:country;type:varchar(100)"`
}

func (RawLocation) TableName() string {
	return "stg_location"
}

type RawDemographic struct {
	RowID      int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	CustomerID string     `gorm:"column:customer_id;type:varchar(50)"`
	BirthDate  *time.Time `gorm:"column:birth_date"`
	Gender     string     `gorm:"column:gender;type:varchar(20)"`
}

func (RawDemographic) TableName() string {
	return "stg_demographic"
}

type RawCategory struct {
	RowID       int64  `gorm:"column:row_id;primaryKey;autoIncrement"`
	CategoryID  string `gorm:"column:category_id;type:varchar(20)"`
	Category    string `gorm:"column:category;type:varchar(100)"`
	Subcategory string `gorm:"column:subcategory;type:varchar(100)"`
	Maintenance bool   `gorm:"column:maintenance"`
}

func (RawCategory) TableName() string {
	return "stg_category"
}
