// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvitationsColumns holds the columns for the "invitations" table.
	InvitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "is_used", Type: field.TypeBool, Default: false},
	}
	// InvitationsTable holds the schema information for the "invitations" table.
	InvitationsTable = &schema.Table{
		Name:       "invitations",
		Columns:    InvitationsColumns,
		PrimaryKey: []*schema.Column{InvitationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invitation_email_is_used",
				Unique:  false,
				Columns: []*schema.Column{InvitationsColumns[1], InvitationsColumns[4]},
			},
		},
	}
	// OcrJobsColumns holds the columns for the "ocr_jobs" table.
	OcrJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "successes", Type: field.TypeJSON, Nullable: true},
		{Name: "failures", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// OcrJobsTable holds the schema information for the "ocr_jobs" table.
	OcrJobsTable = &schema.Table{
		Name:       "ocr_jobs",
		Columns:    OcrJobsColumns,
		PrimaryKey: []*schema.Column{OcrJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_jobs_users_jobs",
				Columns:    []*schema.Column{OcrJobsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrjob_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[8], OcrJobsColumns[2], OcrJobsColumns[4]},
			},
		},
	}
	// PassportsColumns holds the columns for the "passports" table.
	PassportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "birth_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "delivery_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "expiration_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "nationality", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "passport_number", Type: field.TypeString, Size: 9},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "voyage_id", Type: field.TypeUUID, Nullable: true},
	}
	// PassportsTable holds the schema information for the "passports" table.
	PassportsTable = &schema.Table{
		Name:       "passports",
		Columns:    PassportsColumns,
		PrimaryKey: []*schema.Column{PassportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "passports_users_passports",
				Columns:    []*schema.Column{PassportsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "passports_voyages_passports",
				Columns:    []*schema.Column{PassportsColumns[12]},
				RefColumns: []*schema.Column{VoyagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "passport_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PassportsColumns[11], PassportsColumns[9]},
			},
			{
				Name:    "passport_voyage_id_passport_number",
				Unique:  false,
				Columns: []*schema.Column{PassportsColumns[12], PassportsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "uploaded_pages_count", Type: field.TypeInt, Default: 0},
		{Name: "page_credits", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// VoyagesColumns holds the columns for the "voyages" table.
	VoyagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "destination", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// VoyagesTable holds the schema information for the "voyages" table.
	VoyagesTable = &schema.Table{
		Name:       "voyages",
		Columns:    VoyagesColumns,
		PrimaryKey: []*schema.Column{VoyagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "voyages_users_voyages",
				Columns:    []*schema.Column{VoyagesColumns[2]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "voyage_user_id_destination",
				Unique:  true,
				Columns: []*schema.Column{VoyagesColumns[2], VoyagesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvitationsTable,
		OcrJobsTable,
		PassportsTable,
		UsersTable,
		VoyagesTable,
	}
)

func init() {
	InvitationsTable.Annotation = &entsql.Annotation{
		Table: "invitations",
	}
	OcrJobsTable.ForeignKeys[0].RefTable = UsersTable
	OcrJobsTable.Annotation = &entsql.Annotation{
		Table: "ocr_jobs",
	}
	PassportsTable.ForeignKeys[0].RefTable = UsersTable
	PassportsTable.ForeignKeys[1].RefTable = VoyagesTable
	PassportsTable.Annotation = &entsql.Annotation{
		Table: "passports",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
	VoyagesTable.ForeignKeys[0].RefTable = UsersTable
	VoyagesTable.Annotation = &entsql.Annotation{
		Table: "voyages",
	}
}
