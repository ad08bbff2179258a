package menu

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Item, error) {
	return s.repo.List()
}

func (s *Service) ListByCategory(category string) ([]Item, error) {
	return s.repo.ListByCategory(category)
}

func (s *Service) ListByIDs(ids []int) ([]Item, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) GetByID(id int) (Item, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Categories() ([]string, error) {
	return s.repo.Categories()
}

// Available filters a listing down to what customers may order right now.
func Available(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Available {
			out = append(out, it)
		}
	}
	return out
}
