package sqlinline

const QAdminStatsSummary = `--sql 9edc0ab0-2efa-4480-9d76-55c3b10c14ac
select
  (select count(*) from camps) as total_camps,
  (select count(*) from participants) as total_participants,
  (select coalesce(sum(amount), 0) from payments) as total_payments;
`

const QRecentParticipants = `--sql 57b71896-36b7-4507-af8e-68a48c5bd94d
select id, camp_id, participant_email, participant_name, camp_name, camp_fees, healthcare_professional, date_time, confirmation_status, payment_status, properties, created_at
from participants
order by created_at desc
limit 5;
`

const QUserStats = `--sql 6f3a70bb-3a56-49c7-97be-c67f1d2267c4
select
  count(*) as total_registered,
  count(*) filter (where confirmation_status = $2::text) as confirmed
from participants
where participant_email = $1::text;
`
