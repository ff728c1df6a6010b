// FILE: internal/repository/memory/catalog_repositories.go
// Memory-backed repository implementations. Specifications are interpreted
// by type switch; only the catalog's own query shapes are supported.
package memory

import (
	"context"
	"fmt"
	"sort"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/contract"
	"template-catalog-be/internal/repository/specification"
)

func (u *unitOfWork) TemplateRepository() contract.TemplateRepository {
	return &templateRepository{store: u.store}
}

func (u *unitOfWork) FeatureRepository() contract.FeatureRepository {
	return &featureRepository{store: u.store}
}

func (u *unitOfWork) LinkRepository() contract.LinkRepository {
	return &linkRepository{store: u.store}
}

// descending reports whether an OrderBy spec asks for reverse id order.
// Filtering specs are handled per entity; ordering is common.
func descending(specs []specification.Specification) bool {
	for _, s := range specs {
		if o, ok := s.(specification.OrderBy); ok {
			return o.Desc
		}
	}
	return false
}

func sortByID[T any](items []*T, id func(*T) uint64, desc bool) {
	sort.Slice(items, func(i, j int) bool {
		if desc {
			return id(items[i]) > id(items[j])
		}
		return id(items[i]) < id(items[j])
	})
}

// --- Template ---

type templateRepository struct {
	store *Store
}

func matchTemplate(t entity.Template, spec specification.Specification) (bool, error) {
	switch s := spec.(type) {
	case specification.ByID:
		return t.Id == s.ID, nil
	case specification.OrderBy:
		return true, nil
	default:
		return false, fmt.Errorf("memory: unsupported template specification %T", spec)
	}
}

func (r *templateRepository) Create(ctx context.Context, template *entity.Template) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	if template.Id == 0 {
		st.templateSeq++
		template.Id = st.templateSeq
	} else if template.Id > st.templateSeq {
		st.templateSeq = template.Id
	}
	st.templates[template.Id] = *template
	return nil
}

func (r *templateRepository) Update(ctx context.Context, template *entity.Template) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.state.templates[template.Id] = *template
	return nil
}

func (r *templateRepository) Delete(ctx context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.templates[id]; !ok {
		return apperr.NotFoundf("template %d", id)
	}
	for _, l := range r.store.state.links {
		if l.TemplateId == id {
			return apperr.StillReferencedf("template %d", id)
		}
	}
	delete(r.store.state.templates, id)
	return nil
}

func (r *templateRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *templateRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
	// Reject unsupported specs before touching rows so an empty table
	// cannot mask a bad query.
	for _, spec := range specs {
		if _, err := matchTemplate(entity.Template{}, spec); err != nil {
			return nil, err
		}
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*entity.Template, 0)
	for _, t := range r.store.state.templates {
		t := t
		ok := true
		for _, spec := range specs {
			match, err := matchTemplate(t, spec)
			if err != nil {
				return nil, err
			}
			if !match {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, &t)
		}
	}
	sortByID(result, func(t *entity.Template) uint64 { return t.Id }, descending(specs))
	return result, nil
}

// --- Feature ---

type featureRepository struct {
	store *Store
}

func matchFeature(f entity.Feature, spec specification.Specification) (bool, error) {
	switch s := spec.(type) {
	case specification.ByID:
		return f.Id == s.ID, nil
	case specification.ByIDs:
		for _, id := range s.IDs {
			if f.Id == id {
				return true, nil
			}
		}
		return false, nil
	case specification.ByName:
		return f.Name == s.Name, nil
	case specification.OrderBy:
		return true, nil
	default:
		return false, fmt.Errorf("memory: unsupported feature specification %T", spec)
	}
}

func (r *featureRepository) Create(ctx context.Context, feature *entity.Feature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	for _, existing := range st.features {
		if existing.Name == feature.Name {
			return apperr.Duplicatef("feature %q", feature.Name)
		}
	}
	if feature.Id == 0 {
		st.featureSeq++
		feature.Id = st.featureSeq
	} else if feature.Id > st.featureSeq {
		st.featureSeq = feature.Id
	}
	st.features[feature.Id] = *feature
	return nil
}

func (r *featureRepository) Update(ctx context.Context, feature *entity.Feature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.state.features {
		if existing.Name == feature.Name && existing.Id != feature.Id {
			return apperr.Duplicatef("feature %q", feature.Name)
		}
	}
	r.store.state.features[feature.Id] = *feature
	return nil
}

func (r *featureRepository) Delete(ctx context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.features[id]; !ok {
		return apperr.NotFoundf("feature %d", id)
	}
	for _, l := range r.store.state.links {
		if l.FeatureId == id {
			return apperr.StillReferencedf("feature %d", id)
		}
	}
	delete(r.store.state.features, id)
	return nil
}

func (r *featureRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *featureRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	for _, spec := range specs {
		if _, err := matchFeature(entity.Feature{}, spec); err != nil {
			return nil, err
		}
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*entity.Feature, 0)
	for _, f := range r.store.state.features {
		f := f
		ok := true
		for _, spec := range specs {
			match, err := matchFeature(f, spec)
			if err != nil {
				return nil, err
			}
			if !match {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, &f)
		}
	}
	sortByID(result, func(f *entity.Feature) uint64 { return f.Id }, descending(specs))
	return result, nil
}

// --- Link ---

type linkRepository struct {
	store *Store
}

func matchLink(l entity.Link, spec specification.Specification) (bool, error) {
	switch s := spec.(type) {
	case specification.ByID:
		return l.Id == s.ID, nil
	case specification.ByTemplateID:
		return l.TemplateId == s.TemplateID, nil
	case specification.ByFeatureAndTemplate:
		return l.FeatureId == s.FeatureID && l.TemplateId == s.TemplateID, nil
	case specification.OrderBy:
		return true, nil
	default:
		return false, fmt.Errorf("memory: unsupported link specification %T", spec)
	}
}

func (r *linkRepository) Create(ctx context.Context, link *entity.Link) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	if _, ok := st.features[link.FeatureId]; !ok {
		return apperr.NotFoundf("feature %d", link.FeatureId)
	}
	if _, ok := st.templates[link.TemplateId]; !ok {
		return apperr.NotFoundf("template %d", link.TemplateId)
	}
	if link.Id == 0 {
		st.linkSeq++
		link.Id = st.linkSeq
	} else if link.Id > st.linkSeq {
		st.linkSeq = link.Id
	}
	st.links[link.Id] = *link
	return nil
}

func (r *linkRepository) Update(ctx context.Context, link *entity.Link) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	st := r.store.state
	if _, ok := st.features[link.FeatureId]; !ok {
		return apperr.NotFoundf("feature %d", link.FeatureId)
	}
	if _, ok := st.templates[link.TemplateId]; !ok {
		return apperr.NotFoundf("template %d", link.TemplateId)
	}
	st.links[link.Id] = *link
	return nil
}

func (r *linkRepository) DeleteByPair(ctx context.Context, featureId, templateId uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, l := range r.store.state.links {
		if l.FeatureId == featureId && l.TemplateId == templateId {
			delete(r.store.state.links, id)
			return nil
		}
	}
	return apperr.NotFoundf("link (%d, %d)", featureId, templateId)
}

func (r *linkRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Link, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *linkRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Link, error) {
	for _, spec := range specs {
		if _, err := matchLink(entity.Link{}, spec); err != nil {
			return nil, err
		}
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]*entity.Link, 0)
	for _, l := range r.store.state.links {
		l := l
		ok := true
		for _, spec := range specs {
			match, err := matchLink(l, spec)
			if err != nil {
				return nil, err
			}
			if !match {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, &l)
		}
	}
	sortByID(result, func(l *entity.Link) uint64 { return l.Id }, descending(specs))
	return result, nil
}
