package impl

import (
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"

	"github.com/pkg/errors"
)

// repositoryErrorMappings translates persistence sentinels into application errors.
var repositoryErrorMappings = []struct {
	repoErr error
	appErr  *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrDuplicateUser, domainerrors.ErrUserAlreadyExists},
	{repository.ErrFoodTypeNotFound, domainerrors.ErrFoodTypeNotFound},
	{repository.ErrFoodTypeInUse, domainerrors.ErrFoodTypeInUse},
	{repository.ErrFoodNotFound, domainerrors.ErrFoodNotFound},
	{repository.ErrFoodInUse, domainerrors.ErrFoodInUse},
	{repository.ErrFoodConsumptionNotFound, domainerrors.ErrFoodConsumptionNotFound},
	{repository.ErrDailyIntakeNotFound, domainerrors.ErrDailyIntakeNotFound},
	{repository.ErrNegativeDailyIntake, domainerrors.ErrDailyIntakeBelowZero},
}

// translateRepoError maps a repository sentinel to its application error and
// annotates it with msg. Errors without a mapping are only annotated.
func translateRepoError(err error, msg string) error {
	if err == nil {
		return nil
	}

	for _, m := range repositoryErrorMappings {
		if errors.Is(err, m.repoErr) {
			return errors.Wrap(m.appErr, msg)
		}
	}

	return errors.Wrap(err, msg)
}
