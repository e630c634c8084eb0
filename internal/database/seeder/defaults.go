package seeder

// Defaults returns the seeders in dependency order: candidates apply to seeded
// opportunities.
func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		OpportunitiesSeeder{},
		CandidatesSeeder{},
	}
}
