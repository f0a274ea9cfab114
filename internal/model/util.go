package model

// MigrateAble lists every model the database layer auto-migrates.
var MigrateAble []interface{}

func init() {
	MigrateAble = append(
		MigrateAble,
		&User{},
		&Profile{},
		&Company{},
		&File{},
		&Job{},
		&Application{},
	)
}
