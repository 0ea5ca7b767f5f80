package portfolio

// Completion scores how filled-in a portfolio is, on a fixed 0-100 scale.
// The weights sum to 100. This is the single source of truth: clients read
// the persisted value instead of re-deriving it.
//
// The stored ProfileCompletion is only refreshed on basic-info saves, so it
// can lag behind this function after skill or project mutations until the
// next basic-info save.
func Completion(p *Portfolio) int {
	progress := 0
	if p.ProfessionalTitle != "" {
		progress += 20
	}
	if p.Bio != "" {
		progress += 20
	}
	if p.Location != "" {
		progress += 10
	}
	if p.YearsOfExperience > 0 {
		progress += 10
	}
	if len(p.Skills) > 0 {
		progress += 20
	}
	if len(p.Projects) > 0 {
		progress += 20
	}
	return progress
}
