package commands

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"school/backend/internal/pkg/repository/postgresql"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('ADMIN', 'TEACHER', 'STUDENT', 'PARENT');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email text not null,
            password text not null,
            role user_role,
            name text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create user with email: admin@school.local, password: 1",
		Query: `
        INSERT INTO users(email, role, password)
        SELECT 'admin@school.local', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@school.local');
        `,
	},
	{
		Index:       4,
		Description: "Create table: parents.",
		Query: `
        CREATE TABLE IF NOT EXISTS parents (
            id serial primary key,
            user_id int references users(id),
            name text not null,
            email text,
            phone text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: students.",
		Query: `
        CREATE TABLE IF NOT EXISTS students (
            id serial primary key,
            student_id text not null,
            name text not null,
            class text,
            section text,
            parent_id int references parents(id),
            user_id int references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: teachers.",
		Query: `
        CREATE TABLE IF NOT EXISTS teachers (
            id serial primary key,
            teacher_id text not null,
            name text not null,
            subject text,
            user_id int references users(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: teacher_sections.",
		Query: `
        CREATE TABLE IF NOT EXISTS teacher_sections (
            id serial primary key,
            teacher_id int not null references teachers(id),
            class text not null,
            section text not null
        );`,
	},
	{
		Index:       8,
		Description: "Create table: attendance.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id SERIAL PRIMARY KEY,
            student_id INT NOT NULL REFERENCES students(id),
            day TIMESTAMP NOT NULL,
            status VARCHAR(20) NOT NULL,
            reason TEXT,
            marked_by INT REFERENCES users(id),
            marked_by_role VARCHAR(20),
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       9,
		Description: "One attendance row per student per day.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS attendance_student_day_uniq
        ON attendance (student_id, (day::date))
        WHERE deleted_at IS NULL;`,
	},
	{
		Index:       10,
		Description: "Create table: teacher_attendance.",
		Query: `
        CREATE TABLE IF NOT EXISTS teacher_attendance (
            id SERIAL PRIMARY KEY,
            teacher_id INT NOT NULL REFERENCES teachers(id),
            day TIMESTAMP NOT NULL,
            status VARCHAR(20) NOT NULL,
            reason TEXT,
            notes TEXT,
            marked_by INT REFERENCES users(id),
            marked_by_role VARCHAR(20),
            is_modified BOOLEAN DEFAULT false,
            modified_by INT REFERENCES users(id),
            modified_at TIMESTAMP,
            modification_reason TEXT,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       11,
		Description: "One teacher_attendance row per teacher per day.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS teacher_attendance_teacher_day_uniq
        ON teacher_attendance (teacher_id, (day::date))
        WHERE deleted_at IS NULL;`,
	},
	{
		Index:       12,
		Description: "Lookup indexes for roster and window queries.",
		Query: `
        CREATE INDEX IF NOT EXISTS students_class_section_idx ON students (class, section) WHERE deleted_at IS NULL;
        CREATE INDEX IF NOT EXISTS attendance_day_idx ON attendance (day) WHERE deleted_at IS NULL;
        CREATE INDEX IF NOT EXISTS teacher_attendance_day_idx ON teacher_attendance (day) WHERE deleted_at IS NULL;`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
