package repository

// Placeholders use the $N form, which both the pgx stdlib driver and
// modernc sqlite accept.

const insertTripSQL = `
INSERT INTO trips
  (id, title, destination, start_date, end_date, image_url, created_at, updated_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8)
`

const updateTripSQL = `
UPDATE trips
SET title = $2, destination = $3, start_date = $4, end_date = $5, image_url = $6, updated_at = $7
WHERE id = $1
`

const selectTripSQL = `
SELECT id, title, destination, start_date, end_date, image_url, created_at, updated_at
FROM trips
WHERE id = $1
`

const listTripsSQL = `
SELECT id, title, destination, start_date, end_date, image_url, created_at, updated_at
FROM trips
ORDER BY start_date, created_at
`

const deleteTripSQL = `DELETE FROM trips WHERE id = $1`

const insertBookingSQL = `
INSERT INTO bookings
  (id, trip_id, type, title, start_date, end_date, location, description,
   confirmation_number, from_place, to_place, airline, flight_number, image_url,
   created_at, updated_at)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`

const updateBookingSQL = `
UPDATE bookings
SET type = $2, title = $3, start_date = $4, end_date = $5, location = $6,
    description = $7, confirmation_number = $8, from_place = $9, to_place = $10,
    airline = $11, flight_number = $12, image_url = $13, updated_at = $14
WHERE id = $1
`

const selectBookingSQL = `
SELECT id, trip_id, type, title, start_date, end_date, location, description,
       confirmation_number, from_place, to_place, airline, flight_number, image_url,
       created_at, updated_at
FROM bookings
WHERE id = $1
`

const listBookingsSQL = `
SELECT id, trip_id, type, title, start_date, end_date, location, description,
       confirmation_number, from_place, to_place, airline, flight_number, image_url,
       created_at, updated_at
FROM bookings
WHERE trip_id = $1
ORDER BY start_date, created_at
`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

const deleteTripBookingsSQL = `DELETE FROM bookings WHERE trip_id = $1`
