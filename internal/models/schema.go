package models

// TenantSchema lists every model that lives in a tenant's database, in a
// migration-safe order. The master database only carries Client.
func TenantSchema() []interface{} {
	return []interface{}{
		&Product{},
		&Order{},
		&OrderItem{},
		&Bill{},
		&LedgerEntry{},
		&Employee{},
	}
}
