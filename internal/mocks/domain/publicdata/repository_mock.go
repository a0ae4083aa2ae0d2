// Package publicdatamock holds a testify mock of publicdata.Repository.
package publicdatamock

import (
	"context"

	"github.com/riskibarqy/league-site/internal/domain/jornada"
	"github.com/riskibarqy/league-site/internal/domain/match"
	"github.com/riskibarqy/league-site/internal/domain/standing"
	"github.com/stretchr/testify/mock"
)

// Repository is a testify mock of publicdata.Repository.
type Repository struct {
	mock.Mock
}

// Jornadas provides a mock function with given fields: ctx
func (_m *Repository) Jornadas(ctx context.Context) ([]jornada.Entry, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Jornadas")
	}

	var r0 []jornada.Entry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]jornada.Entry, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []jornada.Entry); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]jornada.Entry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Matches provides a mock function with given fields: ctx
func (_m *Repository) Matches(ctx context.Context) ([]match.Match, error) {
	return _m.matchList("Matches", ctx)
}

// Recent provides a mock function with given fields: ctx
func (_m *Repository) Recent(ctx context.Context) ([]match.Match, error) {
	return _m.matchList("Recent", ctx)
}

// Upcoming provides a mock function with given fields: ctx
func (_m *Repository) Upcoming(ctx context.Context) ([]match.Match, error) {
	return _m.matchList("Upcoming", ctx)
}

// Standings provides a mock function with given fields: ctx
func (_m *Repository) Standings(ctx context.Context) ([]standing.Row, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Standings")
	}

	var r0 []standing.Row
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]standing.Row, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []standing.Row); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]standing.Row)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *Repository) matchList(method string, ctx context.Context) ([]match.Match, error) {
	ret := _m.MethodCalled(method, ctx)

	if len(ret) == 0 {
		panic("no return value specified for " + method)
	}

	var r0 []match.Match
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]match.Match, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []match.Match); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]match.Match)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewRepository returns a mock that asserts its expectations on cleanup.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
