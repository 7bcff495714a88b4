package models

import (
	"time"
)

// Modelo dimensional que consume el servicio de reportes.
// Las surrogate keys son densas y deterministas por corrida.

type DimCustomer struct {
	CustomerSK    int64      `gorm:"column:customer_sk;primaryKey"`
	CustomerID    int64      `gorm:"column:customer_id"`
	CustomerKey   string     `gorm:"column:customer_key;type:varchar(50)"`
	FirstName     string     `gorm:"column:first_name;type:varchar(100)"`
	LastName      string     `gorm:"column:last_name;type:varchar(100)"`
	Country       string     `gorm:"column:country;type:varchar(100)"`
	MaritalStatus string     `gorm:"column:marital_status;type:varchar(20)"`
	Gender        string     `gorm:"column:gender;type:varchar(20)"`
	BirthDate     *time.Time `gorm:"column:birth_date"`
	CreatedDate   *time.Time `gorm:"column:created_date"`
}

func (DimCustomer) TableName() string {
	return "dim_customer"
}

type DimProduct struct {
	ProductSK   int64      `gorm:"column:product_sk;primaryKey"`
	ProductID   int64      `gorm:"column:product_id"`
	ProductKey  string     `gorm:"column:product_key;type:varchar(50)"`
	Name        string     `gorm:"column:name;type:varchar(255)"`
	CategoryID  string     `gorm:"column:category_id;type:varchar(20)"`
	Category    string     `gorm:"column:category;type:varchar(100)"`
	Subcategory string     `gorm:"column:subcategory;type:varchar(100)"`
	Maintenance bool       `gorm:"column:maintenance"`
	Cost        float64    `gorm:"column:cost"`
	Line        string     `gorm:"column:line;type:varchar(30)"`
	StartDate   *time.Time `gorm:"column:start_date"`
}

func (DimProduct) TableName() string {
	return "dim_product"
}

// FactSales mantiene la fila aunque el lookup falle: la SK queda en NULL
// para auditoría aguas abajo.
type FactSales struct {
	RowID       int64      `gorm:"column:row_id;primaryKey;autoIncrement"`
	OrderNumber string     `gorm:"column:order_number;type:varchar(50)"`
	ProductSK   *int64     `gorm:"column:product_sk"`
	CustomerSK  *int64     `gorm:"column:customer_sk"`
	OrderDate   *time.Time `gorm:"column:order_date"`
	ShipDate    *time.Time `gorm:"column:ship_date"`
	DueDate     *time.Time `gorm:"column:due_date"`
	Amount      float64    `gorm:"column:amount"`
	Quantity    int64      `gorm:"column:quantity"`
	Price       *float64   `gorm:"column:price"`
}

func (FactSales) TableName() string {
	return "fact_sales"
}
