package templates

import "github.com/noiriko/create-noiriko/internal/project"

// Option describes a selectable choice for prompts and summaries.
type Option struct {
	// Value is the canonical identifier (e.g., "clerk").
	Value string

	// Label is the human-readable name shown in prompts.
	Label string

	// Description explains what choosing it adds to the project.
	Description string
}

var packageManagerOptions = map[project.PackageManager]Option{
	project.PackageManagerNPM:  {Value: "npm", Label: "npm", Description: "Node's default package manager"},
	project.PackageManagerPNPM: {Value: "pnpm", Label: "pnpm", Description: "Fast, disk space efficient (recommended)"},
	project.PackageManagerBun:  {Value: "bun", Label: "bun", Description: "All-in-one JavaScript runtime"},
	project.PackageManagerYarn: {Value: "yarn", Label: "yarn", Description: "Yarn classic workspaces"},
}

var authOptions = map[project.Auth]Option{
	project.AuthNone:       {Value: "none", Label: "None", Description: "Add authentication later"},
	project.AuthBetterAuth: {Value: "better-auth", Label: "Better Auth", Description: "Self-hosted email and password auth"},
	project.AuthClerk:      {Value: "clerk", Label: "Clerk", Description: "Hosted auth with prebuilt components"},
	project.AuthNextAuth:   {Value: "next-auth", Label: "NextAuth.js", Description: "Auth.js with a GitHub provider"},
	project.AuthLucia:      {Value: "lucia", Label: "Lucia", Description: "Session-based auth library"},
}

var databaseOptions = map[project.Database]Option{
	project.DatabaseNone:     {Value: "none", Label: "None", Description: "Add a database later"},
	project.DatabaseSQLite:   {Value: "sqlite", Label: "SQLite", Description: "File-based, zero setup"},
	project.DatabasePostgres: {Value: "postgres", Label: "PostgreSQL", Description: "Relational, production ready"},
	project.DatabaseMySQL:    {Value: "mysql", Label: "MySQL", Description: "Relational, widely hosted"},
	project.DatabaseMongoDB:  {Value: "mongodb", Label: "MongoDB", Description: "Document database"},
}

var ormOptions = map[project.ORM]Option{
	project.ORMNone:    {Value: "none", Label: "None", Description: "Bring your own data layer"},
	project.ORMDrizzle: {Value: "drizzle", Label: "Drizzle", Description: "Lightweight, SQL-like TypeScript ORM"},
	project.ORMPrisma:  {Value: "prisma", Label: "Prisma", Description: "Schema-first ORM with generated client"},
}

var addonOptions = map[project.Addon]Option{
	project.AddonAPI:       {Value: "api", Label: "API routes", Description: "Example route handler"},
	project.AddonEmail:     {Value: "email", Label: "Email", Description: "Resend email package"},
	project.AddonPayments:  {Value: "payments", Label: "Payments", Description: "Stripe client and checkout helper"},
	project.AddonAnalytics: {Value: "analytics", Label: "Analytics", Description: "Vercel Analytics component"},
	project.AddonSEO:       {Value: "seo", Label: "SEO", Description: "robots.txt and sitemap routes"},
	project.AddonI18n:      {Value: "i18n", Label: "i18n", Description: "Locale config and messages"},
}

// PackageManagerOption returns the display option for a package manager.
func PackageManagerOption(pm project.PackageManager) Option { return lookupOption(packageManagerOptions, pm) }

// AuthOption returns the display option for an auth provider.
func AuthOption(a project.Auth) Option { return lookupOption(authOptions, a) }

// DatabaseOption returns the display option for a database.
func DatabaseOption(db project.Database) Option { return lookupOption(databaseOptions, db) }

// ORMOption returns the display option for an ORM.
func ORMOption(o project.ORM) Option { return lookupOption(ormOptions, o) }

// AddonOption returns the display option for an addon.
func AddonOption(a project.Addon) Option { return lookupOption(addonOptions, a) }

func lookupOption[K ~string](table map[K]Option, key K) Option {
	if opt, ok := table[key]; ok {
		return opt
	}
	return Option{Value: string(key), Label: string(key)}
}
