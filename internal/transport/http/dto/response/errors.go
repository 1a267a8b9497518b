package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrCarNotFound = ErrorResponse{
		Status:  "error",
		Error:   "car_not_found",
		Details: "Car does not exist",
	}

	ErrLeadNotFound = ErrorResponse{
		Status:  "error",
		Error:   "lead_not_found",
		Details: "Lead does not exist",
	}

	ErrPostNotFound = ErrorResponse{
		Status:  "error",
		Error:   "post_not_found",
		Details: "Post does not exist",
	}

	ErrSlugAlreadyExists = ErrorResponse{
		Status:  "error",
		Error:   "slug_already_exists",
		Details: "A post with this slug already exists",
	}

	ErrUserAlreadyExists = ErrorResponse{
		Status:  "error",
		Error:   "user_already_exists",
		Details: "User with this email already exists",
	}

	ErrForbidden = ErrorResponse{
		Status:  "error",
		Error:   "forbidden",
		Details: "Insufficient role for this operation",
	}

	ErrInternal = ErrorResponse{
		Status: "error",
		Error:  "internal_error",
	}
)
