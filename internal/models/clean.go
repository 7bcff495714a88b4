package models

import (
	"time"
)

// Modelos de la capa limpia: una fila por identidad de negocio,
// códigos expandidos, fechas validadas. Se reescriben completas en cada corrida.

type CleanCustomer struct {
	CustomerID    int64      `gorm:"column:customer_id;primaryKey"`
	CustomerKey   string     `gorm:"column:customer_key;type:varchar(50)"`
	FirstName     string     `gorm:"column:first_name;type:varchar(100)"`
	LastName      string     `gorm:"column:last_name;type:varchar(100)"`
	MaritalStatus string     `gorm:"column:marital_status;type:varchar(20)"`
	Gender        string     `gorm:"column:gender;type:varchar(20)"`
	CreatedDate   *time.Time `gorm:"column:created_date"`
}

func (CleanCustomer) TableName() string {
	return "clean_customer"
}

// CleanProduct conserva el historial de versiones; la versión vigente
// es la que tiene end_date en NULL.
type CleanProduct struct {
	RowID      int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	ProductID  int64      `gorm:"column:product_id"`
	ProductKey string     `gorm:"column:product_key;type:varchar(50)"`
	CategoryID string     `gorm:"column:category_id;type:varchar(20)"`
	Name       string     `gorm:"column:name;type:varchar(255)"`
	Cost       float64    `gorm:"column:cost"`
	Line       string     `gorm:"column:line;type:varchar(30)"`
	StartDate  *time.Time `gorm:"column:start_date"`
	EndDate    *time.Time `gorm:"column:end_date"`
}

func (CleanProduct) TableName() string {
	return "clean_product"
}

type CleanSalesLine struct {
	RowID       int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	OrderNumber string     `gorm:"column:order_number;type:varchar(50)"`
	ProductKey  string     `gorm:"column:product_key;type:varchar(50)"`
	CustomerID  int64      `gorm:"column:customer_id"`
	OrderDate   *time.Time `gorm:"column:order_date"`
	ShipDate    *time.Time `gorm:"column:ship_date"`
	DueDate     *time.Time `gorm:"column:due_date"`
	Amount      float64    `gorm:"column:amount"`
	Quantity    int64      `gorm:"column:quantity"`
	Price       *float64   `gorm:"column:price"`
}

func (CleanSalesLine) TableName() string {
	return "clean_sales_line"
}

type CleanLocation struct {
	CustomerKey string `gorm:"column:customer_key;type:varchar(50);primaryKey"`
	Country     string `gorm:"column:country;type:varchar(100)"`
}

func (CleanLocation) TableName() string {
	return "clean_location"
}

type CleanDemographic struct {
	CustomerKey string     `gorm:"column:customer_key;type:varchar(50);primaryKey"`
	BirthDate   *time.Time `gorm:"column:birth_date"`
	Gender      string     `gorm:"column:gender;type:varchar(20)"`
}

func (CleanDemographic) TableName() string {
	return "clean_demographic"
}

type CleanCategory struct {
	CategoryID  string `gorm:"column:category_id;type:varchar(20);primaryKey"`
	Category    string `gorm:"column:category;type:varchar(100)"`
	Subcategory string `gorm:"column:subcategory;type:varchar(100)"`
	Maintenance bool   `gorm:"column:maintenance"`
}

func (CleanCategory) TableName() string {
	return "clean_category"
}
