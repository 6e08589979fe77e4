package middlewares

import (
	"github.com/gin-gonic/gin"
	statusUseCase "github.com/modeemi/spacestatus/application/usecases/status"
)

// GetBasicCredentials extracts the HTTP basic auth pair. The username is the
// space name and the password its shared secret; verification happens in the
// usecase because it needs the target space's row.
func GetBasicCredentials(ctx *gin.Context) (statusUseCase.Credentials, bool) {
	username, password, ok := ctx.Request.BasicAuth()
	if !ok {
		return statusUseCase.Credentials{}, false
	}
	return statusUseCase.Credentials{
		Username: username,
		Password: password,
	}, true
}
